package package_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
)

var Module = fx.Provide(providePackageService)

func providePackageService(s *store.Store) services.PackageServiceInterface {
	return services.NewPackageService(s)
}
