package get_booking

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetTourBooking(ctx context.Context, id int64, actor domain.Actor) (*models.TourBookingResponse, error)
	GetAccommodationBooking(ctx context.Context, id int64, actor domain.Actor) (*models.AccommodationBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
