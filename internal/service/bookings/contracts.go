package bookings

import (
	"context"
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// TourBookingRepository интерфейс репозитория бронирований туров
type TourBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TourBooking, error)
	ListByGuest(ctx context.Context, guestID int64) ([]*domain.TourBooking, error)
}

// AccommodationBookingRepository интерфейс репозитория бронирований проживания
type AccommodationBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AccommodationBooking, error)
	ListByGuest(ctx context.Context, guestID int64) ([]*domain.AccommodationBooking, error)
}

// TimeProvider источник текущего времени для вычисления статусов
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider возвращает системное время
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
