package companions

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("companions.service: invalid input data")

	// ErrSelfRequest возвращается при заявке самому себе
	ErrSelfRequest = errors.New("companions.service: cannot send a request to yourself")

	// ErrDuplicatePending возвращается, когда между гостями уже есть ожидающая заявка
	ErrDuplicatePending = errors.New("companions.service: a pending request already exists")

	// ErrAlreadyConnected возвращается, когда гости уже связаны
	ErrAlreadyConnected = errors.New("companions.service: guests are already connected")

	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("companions.service: guest not found")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("companions.service: request not found")

	// ErrCompanionNotFound возвращается, когда компаньон не найден у владельца
	ErrCompanionNotFound = errors.New("companions.service: companion not found")

	// ErrPermissionDenied возвращается, когда гость не участник заявки или не владелец компаньона
	ErrPermissionDenied = errors.New("companions.service: permission denied")

	// ErrInvalidTransition возвращается, когда заявка уже обработана
	ErrInvalidTransition = errors.New("companions.service: request is not pending")

	// ErrNestedCompanion возвращается, когда компаньон пытается завести своих компаньонов
	ErrNestedCompanion = errors.New("companions.service: companions cannot own companions")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("companions.service: internal error")
)
