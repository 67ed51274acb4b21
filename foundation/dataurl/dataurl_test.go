package dataurl

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "one byte", data: []byte{0x89}},
		{name: "two bytes", data: []byte{0x89, 0x50}},
		{name: "png header", data: []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}},
		{name: "binary run", data: bytes.Repeat([]byte{0x00, 0xff, 0x7f}, 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataURL := EncodePNG(tt.data)

			if !strings.HasPrefix(dataURL, PrefixPNG) {
				t.Fatalf("EncodePNG() = %q, want prefix %q", Preview(dataURL, 30), PrefixPNG)
			}

			// The data URL length is the prefix plus the padded base64
			// payload: 4 output characters for every started group of
			// 3 input bytes.
			payloadLen := ((len(tt.data) + 2) / 3) * 4
			if want := len(PrefixPNG) + payloadLen; len(dataURL) != want {
				t.Errorf("len = %d, want %d", len(dataURL), want)
			}

			mime, decoded, err := Decode(dataURL)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if mime != MimePNG {
				t.Errorf("mime = %q, want %q", mime, MimePNG)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip lost data: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := EncodePNG(nil); got != PrefixPNG {
		t.Errorf("EncodePNG(nil) = %q, want the bare prefix %q", got, PrefixPNG)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
	}{
		{name: "empty", dataURL: ""},
		{name: "no scheme", dataURL: "image/png;base64,AAAA"},
		{name: "no marker", dataURL: "data:image/png,AAAA"},
		{name: "bad payload", dataURL: "data:image/png;base64,not base64!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decode(tt.dataURL); err == nil {
				t.Errorf("Decode(%q) expected an error", tt.dataURL)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{name: "shorter than n", input: "data:", n: 100, want: "data:"},
		{name: "empty", input: "", n: 100, want: ""},
		{name: "exact length", input: "abcd", n: 4, want: "abcd"},
		{name: "truncated", input: "abcdefgh", n: 4, want: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.input, tt.n); got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}
