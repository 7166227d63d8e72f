package get_guest_bookings

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ListGuestBookings(ctx context.Context, guestID int64, actor domain.Actor) (*models.GuestBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
