package cancel_booking

import (
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64
	Actor     domain.Actor // Кто отменяет: владелец или сотрудник
	Reason    string       // Причина отмены (обязательна)
}

// Response модель ответа после отмены
type Response struct {
	ID                 int64
	Status             string
	CancellationReason string
	CancelledAt        time.Time
	ReleasedSlots      int // Сколько мест вернулось в расписание или номер
}
