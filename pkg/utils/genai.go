package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// GenAIClientInterface is the text-in/text-out contract the itinerary and
// content-enrichment services depend on. Responses from GenerateJSON are
// cleaned of code fences but not schema-validated; that is the caller's job.
type GenAIClientInterface interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// NewGenAIClient builds either an OpenAI or Gemini client based on config.
func NewGenAIClient(provider, apiKey, model string) (GenAIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
