package storage

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// EnhanceImageForOCR sharpens a receipt photo before transcription:
// grayscale for contrast, then contrast, sharpen, brightness, and gamma
// passes. Thermal-paper photos are routinely low-contrast and these passes
// measurably improve character recognition.
//
// The result is re-encoded as JPEG. If the input can't be decoded, the
// original bytes are returned so OCR can still take its chances.
func EnhanceImageForOCR(imageData []byte) []byte {
	src, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return imageData
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)
	img = imaging.AdjustBrightness(img, 10)
	img = imaging.AdjustGamma(img, 1.2)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return imageData
	}
	return buf.Bytes()
}
