package domain

import "errors"

var (
	// ErrInsufficientCapacity возвращается, когда свободных мест меньше, чем запрошено
	ErrInsufficientCapacity = errors.New("domain: insufficient capacity")

	// ErrInvalidGuestCount возвращается при неположительном количестве гостей
	ErrInvalidGuestCount = errors.New("domain: guest count must be positive")

	// ErrInvalidTransition возвращается при попытке перехода из недопустимого (обычно терминального) статуса
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrNegativeAmount возвращается, когда итоговая сумма бронирования получается отрицательной
	ErrNegativeAmount = errors.New("domain: total amount must not be negative")

	// ErrSelfReference возвращается при попытке связать гостя с самим собой
	ErrSelfReference = errors.New("domain: guest cannot reference itself")

	// ErrNestedCompanion возвращается, когда компаньон пытается владеть другими компаньонами
	ErrNestedCompanion = errors.New("domain: companion cannot own companions")
)
