// Package ollama provides an implementation for using ollama.
package ollama

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/ollama"
)

// Embedder implements the Embedder interface.
type Embedder struct {
	llm *ollama.LLM
}

// NewEmbedder constructs Ollama support for embedding.
func NewEmbedder(model string) (*Embedder, error) {
	llm, err := ollama.New(ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}

	embedder := Embedder{
		llm: llm,
	}

	return &embedder, nil
}

// CreateEmbedding implements the Embedder interface. The ollama text
// models can't take the raw image, so the embedding is based on the
// text the analysis produced for it.
func (emb *Embedder) CreateEmbedding(ctx context.Context, image []byte, text string) ([]float64, error) {
	results, err := emb.llm.CreateEmbedding(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}

	final := make([]float64, len(results[0]))
	for i := range results[0] {
		final[i] = float64(results[0][i])
	}

	return final, nil
}
