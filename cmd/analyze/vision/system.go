package vision

import (
	"fmt"

	"github.com/loyca-ai/avatar-tools/cmd/analyze/vision/systems/ollama"
	"github.com/loyca-ai/avatar-tools/cmd/analyze/vision/systems/pg"
)

const (
	SystemOllama          = "ollama"
	SystemPredictionGuard = "prediction-guard"
)

// CreateEmbedder can create an implementation of the Embedder interface
// based on well known systems.
func CreateEmbedder(system string, model string, apiKey string) (Embedder, error) {
	switch system {
	case SystemOllama:
		return ollama.NewEmbedder(model)

	case SystemPredictionGuard:
		return pg.NewEmbedder(apiKey), nil
	}

	return nil, fmt.Errorf("unknown system or model: system %q, model %q", system, model)
}
