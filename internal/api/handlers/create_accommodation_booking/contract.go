package create_accommodation_booking

import (
	"context"

	createAccommodationBooking "github.com/m04kA/tourism-booking-service/internal/usecase/create_accommodation_booking"
)

type CreateAccommodationBookingUseCase interface {
	Execute(ctx context.Context, req *createAccommodationBooking.Request) (*createAccommodationBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
