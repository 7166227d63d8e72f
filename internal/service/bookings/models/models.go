package models

import (
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// TourBookingResponse бронирование тура
type TourBookingResponse struct {
	ID             int64      `json:"id"`
	GuestID        int64      `json:"guestId"`
	TourID         int64      `json:"tourId"`
	ScheduleID     int64      `json:"scheduleId"`
	Status         string     `json:"status"`
	NumAdults      int        `json:"numAdults"`
	NumChildren    int        `json:"numChildren"`
	TotalGuests    int        `json:"totalGuests"`
	BasePrice      float64    `json:"basePrice"`
	AdditionalFees float64    `json:"additionalFees"`
	Discounts      float64    `json:"discounts"`
	TotalAmount    float64    `json:"totalAmount"`
	AmountPaid     float64    `json:"amountPaid"`
	BalanceDue     float64    `json:"balanceDue"`
	PaymentStatus  string     `json:"paymentStatus"`
	ContactName    string     `json:"contactName"`
	ContactEmail   string     `json:"contactEmail"`
	ContactPhone   string     `json:"contactPhone,omitempty"`
	CompanionIDs   []int64    `json:"companionIds"`
	ScheduleStart  time.Time  `json:"scheduleStart"`
	ScheduleEnd    time.Time  `json:"scheduleEnd"`
	CancelReason   *string    `json:"cancellationReason,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// AccommodationBookingResponse бронирование проживания
type AccommodationBookingResponse struct {
	ID              int64      `json:"id"`
	GuestID         int64      `json:"guestId"`
	AccommodationID int64      `json:"accommodationId"`
	RoomID          int64      `json:"roomId"`
	CheckIn         string     `json:"checkIn"`  // YYYY-MM-DD
	CheckOut        string     `json:"checkOut"` // YYYY-MM-DD
	Nights          int        `json:"nights"`
	NumGuests       int        `json:"numGuests"`
	Status          string     `json:"status"`
	TotalAmount     float64    `json:"totalAmount"`
	AmountPaid      float64    `json:"amountPaid"`
	PaymentStatus   string     `json:"paymentStatus"`
	ContactName     string     `json:"contactName"`
	ContactEmail    string     `json:"contactEmail"`
	ContactPhone    string     `json:"contactPhone,omitempty"`
	CancelReason    *string    `json:"cancellationReason,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// GuestBookingsResponse история бронирований гостя
type GuestBookingsResponse struct {
	TourBookings          []*TourBookingResponse          `json:"tourBookings"`
	AccommodationBookings []*AccommodationBookingResponse `json:"accommodationBookings"`
}

// FromDomainTourBooking конвертирует domain.TourBooking в TourBookingResponse
// Статус вычисляется на момент now
func FromDomainTourBooking(b *domain.TourBooking, now time.Time) *TourBookingResponse {
	companions := b.CompanionIDs
	if companions == nil {
		companions = []int64{}
	}

	return &TourBookingResponse{
		ID:             b.ID,
		GuestID:        b.GuestID,
		TourID:         b.TourID,
		ScheduleID:     b.ScheduleID,
		Status:         string(b.CurrentStatus(now)),
		NumAdults:      b.NumAdults,
		NumChildren:    b.NumChildren,
		TotalGuests:    b.TotalGuests(),
		BasePrice:      b.BasePrice,
		AdditionalFees: b.AdditionalFees,
		Discounts:      b.Discounts,
		TotalAmount:    b.TotalAmount,
		AmountPaid:     b.AmountPaid,
		BalanceDue:     b.BalanceDue(),
		PaymentStatus:  string(b.PaymentStatus),
		ContactName:    b.ContactName,
		ContactEmail:   b.ContactEmail,
		ContactPhone:   b.ContactPhone,
		CompanionIDs:   companions,
		ScheduleStart:  b.ScheduleStart,
		ScheduleEnd:    b.ScheduleEnd,
		CancelReason:   b.CancellationReason,
		CancelledAt:    b.CancelledAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainTourBookingList конвертирует список бронирований туров
func FromDomainTourBookingList(list []*domain.TourBooking, now time.Time) []*TourBookingResponse {
	result := make([]*TourBookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, FromDomainTourBooking(b, now))
	}
	return result
}

// FromDomainAccommodationBooking конвертирует domain.AccommodationBooking в AccommodationBookingResponse
func FromDomainAccommodationBooking(b *domain.AccommodationBooking) *AccommodationBookingResponse {
	return &AccommodationBookingResponse{
		ID:              b.ID,
		GuestID:         b.GuestID,
		AccommodationID: b.AccommodationID,
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn.Format("2006-01-02"),
		CheckOut:        b.CheckOut.Format("2006-01-02"),
		Nights:          b.Nights(),
		NumGuests:       b.NumGuests,
		Status:          string(b.Status),
		TotalAmount:     b.TotalAmount,
		AmountPaid:      b.AmountPaid,
		PaymentStatus:   string(b.PaymentStatus),
		ContactName:     b.ContactName,
		ContactEmail:    b.ContactEmail,
		ContactPhone:    b.ContactPhone,
		CancelReason:    b.CancellationReason,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainAccommodationBookingList конвертирует список бронирований проживания
func FromDomainAccommodationBookingList(list []*domain.AccommodationBooking) []*AccommodationBookingResponse {
	result := make([]*AccommodationBookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, FromDomainAccommodationBooking(b))
	}
	return result
}
