package vision

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv/v2"
)

// ExtractText runs OCR over the image and returns any text it can find.
// The OCR path needs tesseract installed, so callers should treat an
// error here as a missing feature rather than a failure.
func ExtractText(imageData []byte) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(imageData), "image/png", true)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}

	return strings.TrimSpace(res.Body), nil
}
