package decide_accommodation_booking

import "github.com/m04kA/tourism-booking-service/internal/domain"

// Decision решение сотрудника
type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionDecline Decision = "decline"
)

// Request модель запроса на решение по заявке
type Request struct {
	BookingID int64
	Actor     domain.Actor
	Decision  Decision
}

// Response модель ответа после решения
type Response struct {
	ID               int64
	Status           string
	RoomID           int64
	RoomAvailability *int // Свободных мест в номере после подтверждения
}
