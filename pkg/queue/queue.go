package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// QueueEmails ключ Redis-списка с письмами на отправку
	QueueEmails = "notifications:emails"
	// QueueDLQ список писем, которые не удалось отправить после всех попыток
	QueueDLQ = "notifications:dlq"
	// MaxRetries сколько раз пытаться отправить письмо до переноса в DLQ
	MaxRetries = 3
	// RetryBackoff пауза воркера после неудачной отправки
	RetryBackoff = 10 * time.Second
)

// JobType тип задачи
type JobType string

const (
	JobTypeEmail JobType = "email"
)

// EmailPayload содержимое письма
type EmailPayload struct {
	Kind           string `json:"kind"`
	RecipientEmail string `json:"recipient_email"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

// Job конверт задачи в очереди
type Job struct {
	ID        string          `json:"id"`
	Type      JobType         `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Attempt   int             `json:"attempt"`
	CreatedAt time.Time       `json:"created_at"`
}

// RedisClient подмножество команд go-redis, которые использует очередь
type RedisClient interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Queue очередь задач поверх Redis-списков
type Queue struct {
	client RedisClient
	logger Logger
	now    func() time.Time
}

// NewQueue создает очередь
func NewQueue(client RedisClient, logger Logger) *Queue {
	return &Queue{client: client, logger: logger, now: time.Now}
}

// EnqueueEmail ставит письмо в очередь и возвращает ID задачи
func (q *Queue) EnqueueEmail(ctx context.Context, payload EmailPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("queue: marshal payload: %w", err)
	}

	job := Job{
		ID:        uuid.New().String(),
		Type:      JobTypeEmail,
		Payload:   body,
		CreatedAt: q.now().UTC(),
	}

	raw, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("queue: marshal job: %w", err)
	}

	if err := q.client.RPush(ctx, QueueEmails, raw).Err(); err != nil {
		return "", fmt.Errorf("queue: rpush: %w", err)
	}

	q.logger.Info("Enqueued email job id=%s kind=%s", job.ID, payload.Kind)
	return job.ID, nil
}

// Dequeue ждет задачу не дольше timeout
// Возвращает nil без ошибки, если задач нет или пришел мусор
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (*Job, error) {
	result, err := q.client.BLPop(ctx, timeout, QueueEmails).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	if len(result) < 2 {
		return nil, nil
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		q.logger.Warn("Dropping invalid job payload: %v", err)
		return nil, nil
	}

	return &job, nil
}

// Retry возвращает задачу в очередь с увеличенным счетчиком попыток
// После MaxRetries задача уходит в DLQ
func (q *Queue) Retry(ctx context.Context, job *Job) error {
	job.Attempt++

	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("queue: marshal job: %w", err)
	}

	if job.Attempt >= MaxRetries {
		if err := q.client.RPush(ctx, QueueDLQ, raw).Err(); err != nil {
			q.logger.Error("DLQ push failed for job id=%s: %v", job.ID, err)
			return err
		}
		q.logger.Warn("Job id=%s moved to DLQ after %d attempts", job.ID, job.Attempt)
		return nil
	}

	if err := q.client.RPush(ctx, QueueEmails, raw).Err(); err != nil {
		return fmt.Errorf("queue: rpush: %w", err)
	}

	q.logger.Info("Job id=%s retried, attempt=%d", job.ID, job.Attempt)
	return nil
}

// DecodeEmail достает EmailPayload из задачи
func DecodeEmail(job *Job) (*EmailPayload, error) {
	if job.Type != JobTypeEmail {
		return nil, fmt.Errorf("queue: unexpected job type %s", job.Type)
	}

	var payload EmailPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return nil, fmt.Errorf("queue: unmarshal payload: %w", err)
	}
	return &payload, nil
}
