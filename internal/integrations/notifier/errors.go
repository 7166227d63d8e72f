package notifier

import "errors"

var (
	// ErrEmptyRecipient возвращается, когда не указан адрес получателя
	ErrEmptyRecipient = errors.New("notifier: empty recipient address")

	// ErrEnqueue возвращается, когда письмо не удалось поставить в очередь
	ErrEnqueue = errors.New("notifier: failed to enqueue email")

	// ErrDeliver возвращается, когда SMTP сервер не принял письмо
	ErrDeliver = errors.New("notifier: failed to deliver email")
)
