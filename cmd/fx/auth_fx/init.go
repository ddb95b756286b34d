package auth_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(provideAuthService)

func provideAuthService(s *store.Store, tokens mem.ResetTokenStore, mail services.MailServiceInterface) services.AuthServiceInterface {
	return services.NewAuthService(s, tokens, mail)
}
