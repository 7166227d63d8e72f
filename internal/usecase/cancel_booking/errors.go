package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrPermissionDenied возвращается, когда отменяет не владелец и не сотрудник
	ErrPermissionDenied = errors.New("cancel_booking: permission denied")

	// ErrInvalidTransition возвращается для бронирований в терминальном статусе
	ErrInvalidTransition = errors.New("cancel_booking: booking can no longer be cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
