// Package dataurl provides support for encoding and decoding base64 data URLs.
package dataurl

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// MimePNG is the mime type used for PNG image payloads.
const MimePNG = "image/png"

// PrefixPNG is the literal prefix of a PNG data URL.
const PrefixPNG = "data:" + MimePNG + ";base64,"

const marker = ";base64,"

// Encode returns the data URL for the specified payload using the
// standard padded base64 alphabet.
func Encode(mime string, data []byte) string {
	return "data:" + mime + marker + base64.StdEncoding.EncodeToString(data)
}

// EncodePNG returns the PNG data URL for the specified payload.
func EncodePNG(data []byte) string {
	return Encode(MimePNG, data)
}

// Decode parses a base64 data URL and returns the mime type and the
// decoded payload. Decoding the URL produced by Encode returns the
// original bytes.
func Decode(dataURL string) (string, []byte, error) {
	rest, found := strings.CutPrefix(dataURL, "data:")
	if !found {
		return "", nil, fmt.Errorf("missing data scheme: %q", Preview(dataURL, 20))
	}

	mime, payload, found := strings.Cut(rest, marker)
	if !found {
		return "", nil, fmt.Errorf("missing base64 marker: %q", Preview(dataURL, 20))
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode payload: %w", err)
	}

	return mime, data, nil
}

// Preview returns at most n leading characters of the specified string.
// Short strings are returned whole.
func Preview(dataURL string, n int) string {
	if len(dataURL) < n {
		return dataURL
	}

	return dataURL[:n]
}
