package decide_accommodation_booking

import (
	decideAccommodationBooking "github.com/m04kA/tourism-booking-service/internal/usecase/decide_accommodation_booking"
)

// DecisionRequest HTTP request model
type DecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=confirm decline"`
}

// DecisionResponse HTTP response model
type DecisionResponse struct {
	ID               int64  `json:"id"`
	Status           string `json:"status"`
	RoomID           int64  `json:"roomId"`
	RoomAvailability *int   `json:"roomAvailability,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *decideAccommodationBooking.Response) *DecisionResponse {
	return &DecisionResponse{
		ID:               resp.ID,
		Status:           resp.Status,
		RoomID:           resp.RoomID,
		RoomAvailability: resp.RoomAvailability,
	}
}
