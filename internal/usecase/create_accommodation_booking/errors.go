package create_accommodation_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_accommodation_booking: invalid input data")

	// ErrInvalidDates возвращается, когда выезд не позже заезда или заезд в прошлом
	ErrInvalidDates = errors.New("create_accommodation_booking: invalid stay dates")

	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("create_accommodation_booking: guest not found")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_accommodation_booking: room not found")

	// ErrRoomNotBookable возвращается для номера на обслуживании
	ErrRoomNotBookable = errors.New("create_accommodation_booking: room is under maintenance")

	// ErrInsufficientCapacity возвращается, когда в номере не хватает мест
	ErrInsufficientCapacity = errors.New("create_accommodation_booking: not enough room availability")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_accommodation_booking: internal error")
)
