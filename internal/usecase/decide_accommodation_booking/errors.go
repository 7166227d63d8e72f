package decide_accommodation_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("decide_accommodation_booking: invalid input data")

	// ErrPermissionDenied возвращается, когда решение принимает не сотрудник
	ErrPermissionDenied = errors.New("decide_accommodation_booking: only staff can decide bookings")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("decide_accommodation_booking: booking not found")

	// ErrRoomNotFound возвращается, когда номер бронирования не найден
	ErrRoomNotFound = errors.New("decide_accommodation_booking: room not found")

	// ErrRoomNotBookable возвращается для номера на обслуживании
	ErrRoomNotBookable = errors.New("decide_accommodation_booking: room is under maintenance")

	// ErrInvalidTransition возвращается, когда бронирование уже не ожидает решения
	ErrInvalidTransition = errors.New("decide_accommodation_booking: booking is not pending")

	// ErrInsufficientCapacity возвращается, когда номер уже заполнен к моменту подтверждения
	ErrInsufficientCapacity = errors.New("decide_accommodation_booking: not enough room availability")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_accommodation_booking: internal error")
)
