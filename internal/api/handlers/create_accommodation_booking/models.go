package create_accommodation_booking

import (
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	createAccommodationBooking "github.com/m04kA/tourism-booking-service/internal/usecase/create_accommodation_booking"
)

// CreateAccommodationBookingRequest HTTP request model
type CreateAccommodationBookingRequest struct {
	GuestID      *int64  `json:"guestId,omitempty"` // только для сотрудников
	RoomID       int64   `json:"roomId" validate:"required,gt=0"`
	CheckIn      string  `json:"checkIn" validate:"required"`  // "2026-08-01"
	CheckOut     string  `json:"checkOut" validate:"required"` // "2026-08-04"
	NumGuests    int     `json:"numGuests" validate:"gte=1"`
	ContactName  *string `json:"contactName,omitempty" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contactPhone,omitempty" validate:"omitempty,max=50"`
}

// AccommodationBookingResponse HTTP response model
type AccommodationBookingResponse struct {
	ID              int64   `json:"id"`
	GuestID         int64   `json:"guestId"`
	AccommodationID int64   `json:"accommodationId"`
	RoomID          int64   `json:"roomId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	NumGuests       int     `json:"numGuests"`
	Status          string  `json:"status"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentStatus   string  `json:"paymentStatus"`
	ContactName     string  `json:"contactName"`
	ContactEmail    string  `json:"contactEmail"`
	ContactPhone    string  `json:"contactPhone,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAccommodationBookingRequest) ToUseCaseRequest(guestID int64) (*createAccommodationBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createAccommodationBooking.Request{
		GuestID:      guestID,
		RoomID:       r.RoomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		NumGuests:    r.NumGuests,
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAccommodationBooking.Response) *AccommodationBookingResponse {
	return &AccommodationBookingResponse{
		ID:              resp.ID,
		GuestID:         resp.GuestID,
		AccommodationID: resp.AccommodationID,
		RoomID:          resp.RoomID,
		CheckIn:         resp.CheckIn.Format(domain.DateFormat),
		CheckOut:        resp.CheckOut.Format(domain.DateFormat),
		Nights:          resp.Nights,
		NumGuests:       resp.NumGuests,
		Status:          resp.Status,
		TotalAmount:     resp.TotalAmount,
		PaymentStatus:   resp.PaymentStatus,
		ContactName:     resp.ContactName,
		ContactEmail:    resp.ContactEmail,
		ContactPhone:    resp.ContactPhone,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
