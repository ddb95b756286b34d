package mail_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
)

var Module = fx.Provide(provideMailService)

func provideMailService(s *store.Store) services.MailServiceInterface {
	return services.NewSMTPMailService(s)
}
