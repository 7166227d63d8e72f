package create_tour_booking

import (
	"context"

	createTourBooking "github.com/m04kA/tourism-booking-service/internal/usecase/create_tour_booking"
)

type CreateTourBookingUseCase interface {
	Execute(ctx context.Context, req *createTourBooking.Request) (*createTourBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
