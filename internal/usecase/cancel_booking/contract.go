package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
)

// TourBookingRepository интерфейс репозитория бронирований туров
type TourBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TourBooking, error)
	Cancel(ctx context.Context, id int64, reason string, cancelledAt time.Time) error
}

// AccommodationBookingRepository интерфейс репозитория бронирований размещения
type AccommodationBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AccommodationBooking, error)
	Cancel(ctx context.Context, id int64, from domain.AccommodationBookingStatus, reason string, cancelledAt time.Time) error
}

// ScheduleRepository освобождение мест расписания
type ScheduleRepository interface {
	Release(ctx context.Context, id int64, guestCount int) error
	GetTour(ctx context.Context, tourID int64) (*domain.Tour, error)
}

// RoomRepository освобождение мест в номере
type RoomRepository interface {
	Release(ctx context.Context, id int64, guestCount int) error
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

// Notifier уведомления об отмене
type Notifier interface {
	TourBookingCancelled(ctx context.Context, to notifications.Recipient, booking *domain.TourBooking, tourName, reason string)
	AccommodationBookingCancelled(ctx context.Context, to notifications.Recipient, booking *domain.AccommodationBooking, reason string)
}

// MetricsRecorder учет результатов бронирования
type MetricsRecorder interface {
	RecordBooking(kind, outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
