package domain

import (
	"math"
	"time"
)

// AccommodationBookingStatus статус бронирования размещения
type AccommodationBookingStatus string

const (
	AccommodationPending   AccommodationBookingStatus = "pending"
	AccommodationConfirmed AccommodationBookingStatus = "confirmed"
	AccommodationDeclined  AccommodationBookingStatus = "declined"
	AccommodationCancelled AccommodationBookingStatus = "cancelled"
)

// IsTerminal returns true for statuses that can no longer change
func (s AccommodationBookingStatus) IsTerminal() bool {
	return s == AccommodationDeclined || s == AccommodationCancelled
}

// AccommodationBooking бронирование номера
// Места в номере занимаются только при подтверждении сотрудником
type AccommodationBooking struct {
	ID              int64
	GuestID         int64
	AccommodationID int64
	RoomID          int64
	CheckIn         time.Time
	CheckOut        time.Time
	NumGuests       int
	Status          AccommodationBookingStatus

	TotalAmount   float64
	AmountPaid    float64
	PaymentStatus PaymentStatus

	ContactName  string
	ContactEmail string
	ContactPhone string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights количество ночей (минимум 1)
func (b *AccommodationBooking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// HoldsCapacity занимает ли бронирование места в номере
func (b *AccommodationBooking) HoldsCapacity() bool {
	return b.Status == AccommodationConfirmed
}

// CanDecide подтвердить или отклонить можно только ожидающее бронирование
func (b *AccommodationBooking) CanDecide() error {
	if b.Status != AccommodationPending {
		return ErrInvalidTransition
	}
	return nil
}

// CanCancel отменить можно ожидающее или подтвержденное бронирование
func (b *AccommodationBooking) CanCancel() error {
	if b.Status.IsTerminal() {
		return ErrInvalidTransition
	}
	return nil
}

// NightsBetween количество ночей между датами заезда и выезда (минимум 1)
func NightsBetween(checkIn, checkOut time.Time) int {
	nights := int(math.Round(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// CalculateAccommodationTotal цена за ночь × количество ночей
func CalculateAccommodationTotal(pricePerNight float64, checkIn, checkOut time.Time) float64 {
	return pricePerNight * float64(NightsBetween(checkIn, checkOut))
}
