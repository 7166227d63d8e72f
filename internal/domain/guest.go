package domain

import (
	"strings"
	"time"
)

// Guest учетная запись гостя или компаньон, которым управляет владелец (MadeBy)
type Guest struct {
	ID                int64
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	PreferredLanguage string

	// MadeBy владелец компаньона; nil для обычной учетной записи
	MadeBy *int64
	// LinkedGuestID реальная учетная запись, которую отражает компаньон (после принятия заявки)
	LinkedGuestID *int64
	GroupName     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompanion returns true when the record is owned by another guest
func (g *Guest) IsCompanion() bool {
	return g.MadeBy != nil
}

// IsOwnedBy returns true when the companion belongs to ownerID
func (g *Guest) IsOwnedBy(ownerID int64) bool {
	return g.MadeBy != nil && *g.MadeBy == ownerID
}

// FullName имя для контактных данных бронирования
func (g *Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// Language предпочитаемый язык гостя или язык по умолчанию
func (g *Guest) Language() string {
	if g.PreferredLanguage == "" {
		return DefaultLanguage
	}
	return g.PreferredLanguage
}

// CanOwnCompanions компаньон не может иметь собственных компаньонов
func (g *Guest) CanOwnCompanions() error {
	if g.IsCompanion() {
		return ErrNestedCompanion
	}
	return nil
}

// CompanionEmail синтезирует уникальный адрес для зеркального компаньона:
// local+companion<suffix>@domain, чтобы не конфликтовать с адресом реальной учетной записи
func CompanionEmail(email, suffix string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email + "+companion" + suffix
	}
	return email[:at] + "+companion" + suffix + email[at:]
}
