package decide_accommodation_booking

import (
	"context"

	decideAccommodationBooking "github.com/m04kA/tourism-booking-service/internal/usecase/decide_accommodation_booking"
)

type DecideUseCase interface {
	Execute(ctx context.Context, req *decideAccommodationBooking.Request) (*decideAccommodationBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
