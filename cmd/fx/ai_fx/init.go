package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"voyago/internal/store"
	"voyago/pkg/utils"
)

var Module = fx.Provide(provideGenAIClient)

// provideGenAIClient prefers the provider saved in AI settings, falling back
// to AI_PROVIDER/AI_MODEL and the provider's key env var. A nil client is a
// valid result; AI endpoints then respond 503 instead of blocking startup.
func provideGenAIClient(s *store.Store) utils.GenAIClientInterface {
	cfg := s.Settings().AI

	provider := cfg.Provider
	if provider == "" {
		provider = os.Getenv("AI_PROVIDER")
	}
	if provider == "" {
		provider = "gemini"
	}

	model := cfg.Model
	if model == "" {
		model = os.Getenv("AI_MODEL")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		switch provider {
		case "openai":
			apiKey = os.Getenv("OPENAI_API_KEY")
		default:
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
	}

	if apiKey == "" {
		log.Printf("No API key configured for AI provider %q; AI features disabled", provider)
		return nil
	}

	client, err := utils.NewGenAIClient(provider, apiKey, model)
	if err != nil {
		log.Printf("Failed to initialize AI client: %v", err)
		return nil
	}
	return client
}
