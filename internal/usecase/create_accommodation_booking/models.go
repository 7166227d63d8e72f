package create_accommodation_booking

import "time"

// Request модель запроса на бронирование номера
type Request struct {
	GuestID   int64
	RoomID    int64
	CheckIn   time.Time // Дата заезда (без времени)
	CheckOut  time.Time // Дата выезда (без времени)
	NumGuests int

	// Контактные данные; если не указаны, берутся из профиля гостя
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID              int64
	GuestID         int64
	AccommodationID int64
	RoomID          int64
	CheckIn         time.Time
	CheckOut        time.Time
	Nights          int
	NumGuests       int
	Status          string
	TotalAmount     float64
	PaymentStatus   string
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	CreatedAt       time.Time
}
