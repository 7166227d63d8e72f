package worker

import (
	"context"
	"time"

	"github.com/m04kA/tourism-booking-service/pkg/queue"
)

// JobQueue операции очереди, нужные воркеру
type JobQueue interface {
	Dequeue(ctx context.Context, timeout time.Duration) (*queue.Job, error)
	Retry(ctx context.Context, job *queue.Job) error
}

// Deliverer доставляет письмо получателю
type Deliverer interface {
	Deliver(payload *queue.EmailPayload) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// EmailWorker вычитывает письма из очереди и доставляет их
type EmailWorker struct {
	queue       JobQueue
	deliverer   Deliverer
	logger      Logger
	pollTimeout time.Duration
	backoff     time.Duration
}

// NewEmailWorker создает воркер доставки писем
func NewEmailWorker(q JobQueue, deliverer Deliverer, logger Logger, pollTimeout time.Duration) *EmailWorker {
	return &EmailWorker{
		queue:       q,
		deliverer:   deliverer,
		logger:      logger,
		pollTimeout: pollTimeout,
		backoff:     queue.RetryBackoff,
	}
}

// Process обрабатывает одну задачу
func (w *EmailWorker) Process(job *queue.Job) error {
	payload, err := queue.DecodeEmail(job)
	if err != nil {
		return err
	}
	if err := w.deliverer.Deliver(payload); err != nil {
		return err
	}
	w.logger.Info("Email delivered: job=%s kind=%s to=%s", job.ID, payload.Kind, payload.RecipientEmail)
	return nil
}

// Run крутит цикл до отмены контекста: dequeue, доставка, повтор при ошибке
func (w *EmailWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Email worker stopping")
			return
		default:
		}

		job, err := w.queue.Dequeue(ctx, w.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			w.logger.Warn("Dequeue error: %v", err)
			w.sleep(ctx)
			continue
		}
		if job == nil {
			continue
		}

		if err := w.Process(job); err != nil {
			w.logger.Error("Email job=%s failed (attempt %d): %v", job.ID, job.Attempt+1, err)
			if reErr := w.queue.Retry(ctx, job); reErr != nil {
				w.logger.Error("Retry enqueue failed for job=%s: %v", job.ID, reErr)
			}
			w.sleep(ctx)
		}
	}
}

func (w *EmailWorker) sleep(ctx context.Context) {
	if w.backoff <= 0 {
		return
	}
	timer := time.NewTimer(w.backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
