package create_tour_booking

import "time"

// Request модель запроса на бронирование тура
type Request struct {
	GuestID        int64   // ID гостя, от имени которого бронируется тур
	ScheduleID     int64   // ID расписания тура
	NumAdults      int     // Количество взрослых
	NumChildren    int     // Количество детей
	AdditionalFees float64 // Дополнительные сборы
	Discounts      float64 // Скидки
	CompanionIDs   []int64 // Компаньоны гостя, которые едут вместе с ним

	// Контактные данные; если не указаны, берутся из профиля гостя
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	GuestID        int64
	TourID         int64
	ScheduleID     int64
	Status         string
	NumAdults      int
	NumChildren    int
	BasePrice      float64
	AdditionalFees float64
	Discounts      float64
	TotalAmount    float64
	PaymentStatus  string
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	CompanionIDs   []int64
	ScheduleStart  time.Time
	ScheduleEnd    time.Time
	SlotsRemaining int // Свободных мест в расписании после бронирования
	CreatedAt      time.Time
}
