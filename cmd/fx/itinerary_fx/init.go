package itinerary_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(s *store.Store, aiClient utils.GenAIClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(s, aiClient)
}
