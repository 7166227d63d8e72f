package accommodationbooking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("accommodationbooking.repository: booking not found")

	// ErrStatusConflict возвращается, когда статус бронирования уже изменился
	ErrStatusConflict = errors.New("accommodationbooking.repository: booking status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("accommodationbooking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("accommodationbooking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("accommodationbooking.repository: failed to scan row")
)
