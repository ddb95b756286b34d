package booking_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
)

var Module = fx.Provide(provideBookingService)

func provideBookingService(s *store.Store, mail services.MailServiceInterface) services.BookingServiceInterface {
	return services.NewBookingService(s, mail)
}
