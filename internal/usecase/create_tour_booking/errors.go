package create_tour_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_tour_booking: invalid input data")

	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("create_tour_booking: guest not found")

	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("create_tour_booking: schedule not found")

	// ErrScheduleNotBookable возвращается для отмененного или завершенного расписания
	ErrScheduleNotBookable = errors.New("create_tour_booking: schedule is not open for booking")

	// ErrCompanionNotOwned возвращается, когда выбранный компаньон не принадлежит гостю
	ErrCompanionNotOwned = errors.New("create_tour_booking: companion does not belong to guest")

	// ErrInsufficientCapacity возвращается, когда свободных мест меньше, чем гостей в заявке
	ErrInsufficientCapacity = errors.New("create_tour_booking: not enough available slots")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_tour_booking: internal error")
)
