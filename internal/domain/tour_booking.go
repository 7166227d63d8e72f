package domain

import "time"

// TourBookingStatus статус бронирования тура
type TourBookingStatus string

const (
	TourBookingPending   TourBookingStatus = "pending"
	TourBookingActive    TourBookingStatus = "active"
	TourBookingCompleted TourBookingStatus = "completed"
	TourBookingCancelled TourBookingStatus = "cancelled"
	TourBookingDeclined  TourBookingStatus = "declined"
)

// IsTerminal returns true for statuses that can no longer change
func (s TourBookingStatus) IsTerminal() bool {
	return s == TourBookingCompleted || s == TourBookingCancelled || s == TourBookingDeclined
}

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// TourBooking бронирование расписания тура
type TourBooking struct {
	ID          int64
	GuestID     int64
	TourID      int64
	ScheduleID  int64
	Status      TourBookingStatus
	NumAdults   int
	NumChildren int

	// Financial data
	BasePrice      float64 // цена за гостя на момент бронирования
	AdditionalFees float64
	Discounts      float64
	TotalAmount    float64
	AmountPaid     float64
	PaymentStatus  PaymentStatus

	// Contact snapshot taken at booking time
	ContactName  string
	ContactEmail string
	ContactPhone string

	CancellationReason *string
	CancelledAt        *time.Time

	// Границы расписания, нужны для вычисления текущего статуса
	ScheduleStart time.Time
	ScheduleEnd   time.Time

	CompanionIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalGuests количество мест, которое занимает бронирование
func (b *TourBooking) TotalGuests() int {
	return b.NumAdults + b.NumChildren
}

// BalanceDue сумма к доплате
func (b *TourBooking) BalanceDue() float64 {
	due := b.TotalAmount - b.AmountPaid
	if due < 0 {
		return 0
	}
	return due
}

// CurrentStatus статус бронирования на момент now
func (b *TourBooking) CurrentStatus(now time.Time) TourBookingStatus {
	return DeriveTourBookingStatus(now, b.ScheduleStart, b.ScheduleEnd, b.Status)
}

// CanCancel проверяет, что бронирование можно отменить на момент now
func (b *TourBooking) CanCancel(now time.Time) error {
	if b.CurrentStatus(now).IsTerminal() {
		return ErrInvalidTransition
	}
	return nil
}

// DeriveTourBookingStatus вычисляет статус бронирования по времени расписания
// Терминальный сохраненный статус возвращается без изменений
func DeriveTourBookingStatus(now, start, end time.Time, stored TourBookingStatus) TourBookingStatus {
	if stored.IsTerminal() {
		return stored
	}
	if now.After(end) {
		return TourBookingCompleted
	}
	if !now.Before(start) {
		return TourBookingActive
	}
	if stored == "" {
		return TourBookingPending
	}
	return stored
}

// CalculateTourTotal итоговая сумма: цена за гостя × гости + сборы − скидки
func CalculateTourTotal(pricePerGuest float64, guests int, fees, discounts float64) (float64, error) {
	if guests < 1 {
		return 0, ErrInvalidGuestCount
	}
	if fees < 0 || discounts < 0 || pricePerGuest < 0 {
		return 0, ErrNegativeAmount
	}
	total := pricePerGuest*float64(guests) + fees - discounts
	if total < 0 {
		return 0, ErrNegativeAmount
	}
	return total, nil
}
