package domain

// Role роль пользователя
type Role string

const (
	RoleGuest    Role = "guest"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Actor предварительно проверенная личность, выполняющая операцию
type Actor struct {
	UserID int64
	Role   Role
}

// IsStaff returns true for employees and admins
func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleEmployee
}

// CanManageBooking владелец бронирования или сотрудник
func (a Actor) CanManageBooking(ownerID int64) bool {
	return a.UserID == ownerID || a.IsStaff()
}

// ParseRole возвращает роль; неизвестные значения считаются гостем
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleEmployee:
		return RoleEmployee
	default:
		return RoleGuest
	}
}
