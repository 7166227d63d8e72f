package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/tourism-booking-service/pkg/queue"
)

// QueueSender ставит письма в Redis-очередь; доставкой занимается cmd/notifier
type QueueSender struct {
	queue  EmailQueue
	logger Logger
}

// NewQueueSender создает отправителя через очередь
func NewQueueSender(q EmailQueue, logger Logger) *QueueSender {
	return &QueueSender{queue: q, logger: logger}
}

// Send ставит письмо в очередь; не ждет SMTP
func (s *QueueSender) Send(ctx context.Context, kind, recipient, subject, body string) error {
	if strings.TrimSpace(recipient) == "" {
		return ErrEmptyRecipient
	}

	jobID, err := s.queue.EnqueueEmail(ctx, queue.EmailPayload{
		Kind:           kind,
		RecipientEmail: recipient,
		Subject:        subject,
		Body:           body,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEnqueue, err)
	}

	s.logger.Info("Notification queued: job=%s kind=%s to=%s", jobID, kind, recipient)
	return nil
}

// LogSender пишет уведомления в лог, когда очередь отключена
type LogSender struct {
	logger Logger
}

// NewLogSender создает отправителя, который только логирует
func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send логирует письмо
func (s *LogSender) Send(_ context.Context, kind, recipient, subject, _ string) error {
	if strings.TrimSpace(recipient) == "" {
		return ErrEmptyRecipient
	}
	s.logger.Info("Notification (log only): kind=%s to=%s subject=%q", kind, recipient, subject)
	return nil
}
