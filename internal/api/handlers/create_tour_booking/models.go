package create_tour_booking

import (
	"time"

	createTourBooking "github.com/m04kA/tourism-booking-service/internal/usecase/create_tour_booking"
)

// CreateTourBookingRequest HTTP request model
type CreateTourBookingRequest struct {
	GuestID        *int64  `json:"guestId,omitempty"` // только для сотрудников
	ScheduleID     int64   `json:"scheduleId" validate:"required,gt=0"`
	NumAdults      int     `json:"numAdults" validate:"gte=0"`
	NumChildren    int     `json:"numChildren" validate:"gte=0"`
	AdditionalFees float64 `json:"additionalFees" validate:"gte=0"`
	Discounts      float64 `json:"discounts" validate:"gte=0"`
	CompanionIDs   []int64 `json:"companionIds" validate:"omitempty,dive,gt=0"`
	ContactName    *string `json:"contactName,omitempty" validate:"omitempty,max=200"`
	ContactEmail   *string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone   *string `json:"contactPhone,omitempty" validate:"omitempty,max=50"`
}

// TourBookingResponse HTTP response model
type TourBookingResponse struct {
	ID             int64   `json:"id"`
	GuestID        int64   `json:"guestId"`
	TourID         int64   `json:"tourId"`
	ScheduleID     int64   `json:"scheduleId"`
	Status         string  `json:"status"`
	NumAdults      int     `json:"numAdults"`
	NumChildren    int     `json:"numChildren"`
	BasePrice      float64 `json:"basePrice"`
	AdditionalFees float64 `json:"additionalFees"`
	Discounts      float64 `json:"discounts"`
	TotalAmount    float64 `json:"totalAmount"`
	PaymentStatus  string  `json:"paymentStatus"`
	ContactName    string  `json:"contactName"`
	ContactEmail   string  `json:"contactEmail"`
	ContactPhone   string  `json:"contactPhone,omitempty"`
	CompanionIDs   []int64 `json:"companionIds"`
	ScheduleStart  string  `json:"scheduleStart"`
	ScheduleEnd    string  `json:"scheduleEnd"`
	SlotsRemaining int     `json:"slotsRemaining"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTourBookingRequest) ToUseCaseRequest(guestID int64) *createTourBooking.Request {
	return &createTourBooking.Request{
		GuestID:        guestID,
		ScheduleID:     r.ScheduleID,
		NumAdults:      r.NumAdults,
		NumChildren:    r.NumChildren,
		AdditionalFees: r.AdditionalFees,
		Discounts:      r.Discounts,
		CompanionIDs:   r.CompanionIDs,
		ContactName:    r.ContactName,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTourBooking.Response) *TourBookingResponse {
	companions := resp.CompanionIDs
	if companions == nil {
		companions = []int64{}
	}

	return &TourBookingResponse{
		ID:             resp.ID,
		GuestID:        resp.GuestID,
		TourID:         resp.TourID,
		ScheduleID:     resp.ScheduleID,
		Status:         resp.Status,
		NumAdults:      resp.NumAdults,
		NumChildren:    resp.NumChildren,
		BasePrice:      resp.BasePrice,
		AdditionalFees: resp.AdditionalFees,
		Discounts:      resp.Discounts,
		TotalAmount:    resp.TotalAmount,
		PaymentStatus:  resp.PaymentStatus,
		ContactName:    resp.ContactName,
		ContactEmail:   resp.ContactEmail,
		ContactPhone:   resp.ContactPhone,
		CompanionIDs:   companions,
		ScheduleStart:  resp.ScheduleStart.Format(time.RFC3339),
		ScheduleEnd:    resp.ScheduleEnd.Format(time.RFC3339),
		SlotsRemaining: resp.SlotsRemaining,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
