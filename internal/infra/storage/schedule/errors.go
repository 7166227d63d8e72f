package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("schedule.repository: tour not found")

	// ErrInsufficientSlots возвращается, когда условное обновление не нашло достаточно свободных мест
	ErrInsufficientSlots = errors.New("schedule.repository: insufficient slots")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
