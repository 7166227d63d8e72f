package domain

import "time"

// ScheduleStatus статус расписания тура
type ScheduleStatus string

const (
	ScheduleActive    ScheduleStatus = "active"
	ScheduleCompleted ScheduleStatus = "completed"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// TourSchedule конкретная дата проведения тура со своей вместимостью
type TourSchedule struct {
	ID           int64
	TourID       int64
	StartTime    time.Time
	EndTime      time.Time
	Price        float64 // цена за одного гостя
	TotalSlots   int
	SlotsBooked  int
	DurationDays int
	Status       ScheduleStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Capacity возвращает счетчик мест расписания
func (s *TourSchedule) Capacity() Capacity {
	return Capacity{Total: s.TotalSlots, Booked: s.SlotsBooked}
}

// SlotsAvailable количество свободных мест
func (s *TourSchedule) SlotsAvailable() int {
	return s.Capacity().Available()
}

// CurrentStatus статус расписания на момент now
func (s *TourSchedule) CurrentStatus(now time.Time) ScheduleStatus {
	return DeriveScheduleStatus(now, s.StartTime, s.EndTime, s.Status)
}

// IsBookable можно ли бронировать расписание на момент now
func (s *TourSchedule) IsBookable(now time.Time) bool {
	return s.CurrentStatus(now) == ScheduleActive
}

// DeriveScheduleStatus вычисляет статус расписания по времени
// Отмена "липкая": отмененное расписание не становится активным или завершенным
func DeriveScheduleStatus(now, start, end time.Time, stored ScheduleStatus) ScheduleStatus {
	if stored == ScheduleCancelled {
		return ScheduleCancelled
	}
	if now.After(end) {
		return ScheduleCompleted
	}
	if !now.Before(start) {
		return ScheduleActive
	}
	if stored == "" {
		return ScheduleActive
	}
	return stored
}

// DurationDays количество календарных дней тура (неполный день считается целым, минимум 1)
func DurationDays(start, end time.Time) int {
	delta := end.Sub(start)
	if delta <= 0 {
		return 1
	}
	days := int(delta / (24 * time.Hour))
	if delta%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		return 1
	}
	return days
}
