package bookingfx

import (
	"go.uber.org/fx"
	"wayfare/internal/services"
)

var Module = fx.Provide(
	provideBookingClient)

func provideBookingClient() services.BookingAPIClient {
	return services.NewRapidAPIBookingClient()
}
