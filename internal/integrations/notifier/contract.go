package notifier

import (
	"context"

	"github.com/m04kA/tourism-booking-service/pkg/queue"
)

// EmailQueue очередь писем
type EmailQueue interface {
	EnqueueEmail(ctx context.Context, payload queue.EmailPayload) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
