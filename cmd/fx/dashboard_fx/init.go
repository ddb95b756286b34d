package dashboard_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService(s *store.Store) services.DashboardServiceInterface {
	return services.NewDashboardService(s)
}
