package driver_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
)

var Module = fx.Provide(provideDriverService)

func provideDriverService(s *store.Store) services.DriverServiceInterface {
	return services.NewDriverService(s)
}
