package create_tour_booking

import (
	"context"
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	CountOwnedCompanions(ctx context.Context, ownerID int64, ids []int64) (int, error)
}

// ScheduleRepository интерфейс репозитория расписаний (счетчик мест)
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TourSchedule, error)
	Reserve(ctx context.Context, id int64, guestCount int) error
	GetTour(ctx context.Context, tourID int64) (*domain.Tour, error)
}

// BookingRepository интерфейс репозитория бронирований туров
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.TourBooking) (*domain.TourBooking, error)
}

// Notifier отправка подтверждения бронирования
type Notifier interface {
	TourBookingCreated(ctx context.Context, to notifications.Recipient, booking *domain.TourBooking, tourName string)
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
