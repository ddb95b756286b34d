package settings_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
)

var Module = fx.Provide(provideSettingsService)

func provideSettingsService(s *store.Store) services.SettingsServiceInterface {
	return services.NewSettingsService(s)
}
