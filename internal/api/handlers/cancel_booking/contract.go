package cancel_booking

import (
	"context"

	cancelBooking "github.com/m04kA/tourism-booking-service/internal/usecase/cancel_booking"
)

type CancelBookingUseCase interface {
	ExecuteTour(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error)
	ExecuteAccommodation(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
