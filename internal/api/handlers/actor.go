package handlers

import "github.com/m04kA/tourism-booking-service/internal/domain"

// ResolveGuestID возвращает гостя, от имени которого выполняется операция
// Сотрудник может действовать за другого гостя, обычный гость только за себя
func ResolveGuestID(actor domain.Actor, requested *int64) (int64, bool) {
	if requested == nil || *requested == actor.UserID {
		return actor.UserID, true
	}
	if !actor.IsStaff() {
		return 0, false
	}
	return *requested, true
}
