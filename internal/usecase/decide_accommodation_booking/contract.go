package decide_accommodation_booking

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
)

// BookingRepository интерфейс репозитория бронирований размещения
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AccommodationBooking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.AccommodationBookingStatus) error
}

// RoomRepository счетчик мест номера
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Reserve(ctx context.Context, id int64, guestCount int) error
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

// Notifier уведомление гостя о решении
type Notifier interface {
	AccommodationBookingDecided(ctx context.Context, to notifications.Recipient, booking *domain.AccommodationBooking)
}

// MetricsRecorder учет результатов бронирования
type MetricsRecorder interface {
	RecordBooking(kind, outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
