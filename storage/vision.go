package storage

import (
	"context"
	"fmt"
	"os"

	vision "cloud.google.com/go/vision/apiv1"
	"google.golang.org/api/option"
	pb "google.golang.org/genproto/googleapis/cloud/vision/v1"
)

// VisionClient transcribes receipt images to plain text. It is the only
// source of OCR text in the system; interpretation of that text lives
// entirely in the parsing package.
type VisionClient struct {
	client *vision.ImageAnnotatorClient
}

func NewVisionClient(ctx context.Context) (*VisionClient, error) {
	credsJSON := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON")
	if credsJSON == "" {
		return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS_JSON environment variable is not set")
	}

	client, err := vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON([]byte(credsJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Vision client: %w", err)
	}

	return &VisionClient{client: client}, nil
}

func (c *VisionClient) Close() error {
	return c.client.Close()
}

// Transcribe runs DOCUMENT_TEXT_DETECTION over image bytes and returns the
// full transcription. DOCUMENT_TEXT_DETECTION handles the dense print of
// receipts better than plain text detection.
func (c *VisionClient) Transcribe(ctx context.Context, imageData []byte) (string, error) {
	image := &pb.Image{Content: imageData}

	response, err := c.client.DetectDocumentText(ctx, image, nil)
	if err != nil {
		return "", fmt.Errorf("failed to detect document text: %w", err)
	}
	if response == nil || response.GetText() == "" {
		return "", fmt.Errorf("no text detected in image")
	}
	return response.GetText(), nil
}
