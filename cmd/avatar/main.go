// This program generates a placeholder avatar for accounts that have no
// picture yet. It renders a deterministic pattern for the given name and
// writes user.png to the working directory, ready for the encode program.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const outputFile = "user.png"

var name string

func init() {
	flag.StringVar(&name, "name", "user", "name that seeds the avatar pattern")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	data, err := generateAvatar(name, 240)
	if err != nil {
		return fmt.Errorf("generate avatar: %w", err)
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}

	fmt.Printf("Avatar for %q written to %s (%d bytes)\n", name, outputFile, len(data))

	return nil
}
