package create_accommodation_booking

import (
	"context"
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований размещения
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.AccommodationBooking) (*domain.AccommodationBooking, error)
}

// Notifier подтверждение получения заявки
type Notifier interface {
	AccommodationBookingCreated(ctx context.Context, to notifications.Recipient, booking *domain.AccommodationBooking)
}

// MetricsRecorder учет результатов бронирования
type MetricsRecorder interface {
	RecordBooking(kind, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
