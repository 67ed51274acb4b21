// This program converts the user avatar into a base64 data URL that can
// be embedded directly in the app. It expects user.png in the working
// directory and writes the data URL to user_base64.txt.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/loyca-ai/avatar-tools/foundation/dataurl"
)

const (
	inputFile  = "user.png"
	outputFile = "user_base64.txt"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {

	// -------------------------------------------------------------------------
	// Read the PNG file.

	imageData, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputFile, err)
	}

	// -------------------------------------------------------------------------
	// Convert to base64 and create the data URL format.

	dataURL := dataurl.EncodePNG(imageData)

	fmt.Printf("Base64 length: %d\n", len(dataURL)-len(dataurl.PrefixPNG))
	fmt.Printf("Data URL length: %d\n", len(dataURL))
	fmt.Printf("First 100 chars: %s\n", dataurl.Preview(dataURL, 100))

	// -------------------------------------------------------------------------
	// Write to a file for easier copying.

	if err := os.WriteFile(outputFile, []byte(dataURL), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}

	fmt.Printf("Base64 data written to %s\n", outputFile)

	return nil
}
