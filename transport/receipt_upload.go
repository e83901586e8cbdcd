package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"tabsplit/parsing"
	"tabsplit/persistence"
	"tabsplit/storage"
)

// UploadReceiptImageHandler accepts a receipt photo, stores it, transcribes
// it, and runs the parser over the transcription. A failed transcription
// degrades to a receipt with an image and no items; the upload itself still
// succeeds.
// Expects POST /receipts/image as multipart/form-data with an "image" part.
func (t *Transport) UploadReceiptImageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, contentType, err := t.validateReceiptImageRequest(w, r)
	if err != nil {
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read image file: %v", err), http.StatusInternalServerError)
		return
	}

	receiptID := persistence.NewID()
	imageURL, err := t.gcsClient.UploadReceiptImage(ctx, bytes.NewReader(fileData), receiptID, contentType)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to upload image: %v", err), http.StatusInternalServerError)
		return
	}

	var records []persistence.ItemRecord
	var totals persistence.TotalsRecord
	var ocrText *string

	text, err := t.visionClient.Transcribe(ctx, storage.EnhanceImageForOCR(fileData))
	if err != nil {
		// Transcription failure belongs to the OCR collaborator; the
		// receipt is saved without items and the text can be supplied
		// manually later.
		t.log.Warn("transcription failed", "receipt_id", receiptID, "error", err)
	} else if text != "" {
		ocrText = &text
		records, totals = itemRecords(parsing.Parse(text))
	}

	receipt, err := t.persistenceClient.CreateReceipt(ctx, records, totals, &imageURL, ocrText)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to save receipt: %v", err), http.StatusInternalServerError)
		return
	}

	t.writeJSON(w, http.StatusCreated, UploadReceiptResponse{
		ReceiptID: receipt.ID,
		ImageURL:  imageURL,
		Items:     toItemResponses(receipt.Items),
		Totals:    toTotalsResponse(receipt.Subtotal, receipt.Tax, receipt.Total),
		OCRText:   ocrText,
	})
}

func (t *Transport) validateReceiptImageRequest(w http.ResponseWriter, r *http.Request) (file io.ReadCloser, contentType string, err error) {
	if r.Method != http.MethodPost {
		err = NewInvalidMethodError(r.Method)
		http.Error(w, err.Error(), http.StatusMethodNotAllowed)
		return nil, "", err
	}

	err = r.ParseMultipartForm(10 << 20) // 10MB
	if err != nil {
		validationErr := NewValidationError("form", fmt.Sprintf("failed to parse multipart form: %v", err))
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return nil, "", validationErr
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		validationErr := NewValidationError("image", fmt.Sprintf("failed to get image file: %v", err))
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return nil, "", validationErr
	}

	if header.Size > 10<<20 {
		validationErr := NewValidationError("image", "image file too large (max 10MB)")
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return nil, "", validationErr
	}

	contentType = header.Header.Get("Content-Type")
	if contentType != "" {
		validTypes := map[string]bool{
			"image/jpeg": true,
			"image/jpg":  true,
			"image/png":  true,
			"image/gif":  true,
			"image/webp": true,
		}
		if !validTypes[contentType] {
			validationErr := NewValidationError("image", fmt.Sprintf("invalid image type: %s", contentType))
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return nil, "", validationErr
		}
	}
	return file, contentType, nil
}
