package pg

import (
	"context"
	"encoding/base64"
)

// rawImage satisfies the client's base64 encoder interface so the raw
// PNG bytes can be handed to the embedding endpoint directly.
type rawImage struct {
	data []byte
}

func newRawImage(data []byte) rawImage {
	return rawImage{
		data: data,
	}
}

// EncodeBase64 converts the raw image into a base64 string.
func (img rawImage) EncodeBase64(ctx context.Context) (string, error) {
	return base64.StdEncoding.EncodeToString(img.data), nil
}
