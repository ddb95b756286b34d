package activity_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
)

var Module = fx.Provide(provideActivityService)

func provideActivityService(s *store.Store) services.ActivityServiceInterface {
	return services.NewActivityService(s)
}
