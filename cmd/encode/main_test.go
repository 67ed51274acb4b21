package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/loyca-ai/avatar-tools/foundation/dataurl"
)

// chdirTemp moves the test into a fresh working directory since run
// operates on fixed file names.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(wd)
	})

	return dir
}

func TestRun(t *testing.T) {
	chdirTemp(t)

	input := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01, 0x02}
	if err := os.WriteFile(inputFile, input, 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if err := run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	mime, decoded, err := dataurl.Decode(string(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if mime != dataurl.MimePNG {
		t.Errorf("mime = %q, want %q", mime, dataurl.MimePNG)
	}
	if !bytes.Equal(decoded, input) {
		t.Errorf("output does not round trip to the input bytes")
	}

	// Payload length follows the padded base64 size rule.
	payloadLen := len(out) - len(dataurl.PrefixPNG)
	if want := ((len(input) + 2) / 3) * 4; payloadLen != want {
		t.Errorf("payload length = %d, want %d", payloadLen, want)
	}
}

func TestRunIdempotent(t *testing.T) {
	chdirTemp(t)

	input := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 32)
	if err := os.WriteFile(inputFile, input, 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if err := run(); err != nil {
		t.Fatalf("first run() error = %v", err)
	}
	first, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("read first output: %v", err)
	}

	if err := run(); err != nil {
		t.Fatalf("second run() error = %v", err)
	}
	second, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("read second output: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("two runs over the same input produced different output files")
	}
}

func TestRunEmptyInput(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile(inputFile, nil, 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	// The preview of the data URL is shorter than 100 characters here,
	// so the run must still complete.
	if err := run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if string(out) != dataurl.PrefixPNG {
		t.Errorf("output = %q, want the bare prefix %q", out, dataurl.PrefixPNG)
	}
}

func TestRunMissingInput(t *testing.T) {
	chdirTemp(t)

	if err := run(); err == nil {
		t.Fatal("run() expected an error for a missing input file")
	}

	if _, err := os.Stat(outputFile); !os.IsNotExist(err) {
		t.Error("output file must not be created when the input is missing")
	}
}
