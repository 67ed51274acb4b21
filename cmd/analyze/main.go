// This program analyzes the user image with a vision model, stores the
// analyzed snapshot in mongodb, and reports the most similar snapshot
// seen before. It expects user.png in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tmc/langchaingo/llms/ollama"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/loyca-ai/avatar-tools/cmd/analyze/vision"
	"github.com/loyca-ai/avatar-tools/foundation/dataurl"
	"github.com/loyca-ai/avatar-tools/foundation/mongodb"
)

const inputFile = "user.png"

var (
	system string
	speak  bool
	debug  bool
)

func init() {
	flag.StringVar(&system, "system", vision.SystemOllama, "embedding system: ollama or prediction-guard")
	flag.BoolVar(&speak, "speak", false, "read the description out loud")
	flag.BoolVar(&debug, "debug", false, "write prompt transcripts to log.txt")

	flag.Parse()
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// -------------------------------------------------------------------------
	// Read the image and create the data URL.

	imageData, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputFile, err)
	}

	dataURL := dataurl.EncodePNG(imageData)

	// -------------------------------------------------------------------------
	// Connect to mongo.

	fmt.Println("Connecting to MongoDB ...")

	client, err := mongodb.Connect(ctx, env("MONGO_URL", "mongodb://localhost:27017"), env("MONGO_USER", "loyca"), env("MONGO_PASS", "loyca"))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	defer client.Disconnect(ctx)

	// -------------------------------------------------------------------------
	// Open a connection with ollama to access the vision model.

	fmt.Println("Connecting to Ollama ...")

	chat, err := ollama.New(ollama.WithModel(env("VISION_MODEL", "llava")))
	if err != nil {
		return fmt.Errorf("ollama: %w", err)
	}

	embedder, err := vision.CreateEmbedder(system, env("EMBED_MODEL", "mxbai-embed-large"), os.Getenv("PREDICTIONGUARD_API_KEY"))
	if err != nil {
		return fmt.Errorf("create embedder: %w", err)
	}

	vis, err := vision.New(client, chat, embedder, debug)
	if err != nil {
		return fmt.Errorf("vision: %w", err)
	}

	// -------------------------------------------------------------------------
	// Extract any text visible in the image.

	extractedText, err := vision.ExtractText(imageData)
	if err != nil {
		fmt.Printf("Text extraction not available: %s\n", err)
		extractedText = ""
	}

	// -------------------------------------------------------------------------
	// Ask the vision model what it sees.

	fmt.Println("Analyzing image ...")

	analysis, err := vis.Analyze(imageData, extractedText)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	title := cases.Title(language.English)

	fmt.Println("-------------------------------------------")
	fmt.Printf("Description: %s\n", analysis.Description)
	fmt.Printf("Keywords: %s\n", analysis.Keywords)
	fmt.Printf("Category: %s\n", title.String(analysis.Category))

	// -------------------------------------------------------------------------
	// Compute the embedding and look for the most similar snapshot.

	embedding, err := vis.CalculateEmbedding(imageData, analysis.Description+"\n"+extractedText)
	if err != nil {
		return fmt.Errorf("embedding: %w", err)
	}

	similar, err := vis.FindSimilarSnapshot(embedding)
	switch {
	case errors.Is(err, vision.ErrNoSnapshots):
		fmt.Println("No earlier snapshots to compare against")

	case err != nil:
		return fmt.Errorf("similarity search: %w", err)

	default:
		fmt.Printf("Most similar snapshot: %s (%.2f%%)\n", similar.ID, similar.Score*100)
		fmt.Printf("  Captured: %s\n", similar.CapturedAt.Format(time.RFC3339))
		fmt.Printf("  Description: %s\n", similar.Description)
	}

	// -------------------------------------------------------------------------
	// Store this snapshot for future comparisons.

	id, err := vis.SaveSnapshot(dataURL, analysis, extractedText, embedding)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	fmt.Printf("Snapshot stored: %s\n", id)

	if speak {
		vis.Speak(analysis.Description)
	}

	return nil
}

func env(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
