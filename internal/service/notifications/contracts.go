package notifications

import "context"

// Sender внешний отправитель писем
type Sender interface {
	Send(ctx context.Context, kind, recipient, subject, body string) error
}

// Catalog словарь переводов
type Catalog interface {
	Text(key, lang string) string
	Textf(key, lang string, args ...interface{}) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
