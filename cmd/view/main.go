// This program previews the user image in the terminal so the encoded
// avatar can be checked without opening the app. It reads user.png by
// default, or a data URL file with -url.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/loyca-ai/avatar-tools/cmd/view/terminal"
	"github.com/loyca-ai/avatar-tools/foundation/dataurl"
)

var urlFile string

func init() {
	flag.StringVar(&urlFile, "url", "", "read a data URL file instead of user.png")

	flag.Parse()
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fileName := "user.png"
	load := loadPNG

	if urlFile != "" {
		fileName = urlFile
		load = loadDataURL
	}

	viewer, err := terminal.New(fileName, func() (image.Image, error) {
		return load(fileName)
	})
	if err != nil {
		return fmt.Errorf("terminal viewer: %w", err)
	}
	defer viewer.Shutdown()

	<-viewer.Run()

	return nil
}

func loadPNG(fileName string) (image.Image, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	return img, nil
}

func loadDataURL(fileName string) (image.Image, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}

	mime, payload, err := dataurl.Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("decode data url: %w", err)
	}

	if mime != dataurl.MimePNG {
		return nil, fmt.Errorf("unexpected mime type %q", mime)
	}

	img, err := png.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	return img, nil
}
