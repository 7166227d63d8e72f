package cancel_booking

import (
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	cancelBooking "github.com/m04kA/tourism-booking-service/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason" validate:"required"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason"`
	CancelledAt        string `json:"cancelledAt"`
	ReleasedSlots      int    `json:"releasedSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(bookingID int64, actor domain.Actor) *cancelBooking.Request {
	return &cancelBooking.Request{
		BookingID: bookingID,
		Actor:     actor,
		Reason:    r.CancellationReason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:                 resp.ID,
		Status:             resp.Status,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        resp.CancelledAt.Format(time.RFC3339),
		ReleasedSlots:      resp.ReleasedSlots,
	}
}
