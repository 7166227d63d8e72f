package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/pkg/logger"
	"github.com/m04kA/tourism-booking-service/pkg/queue"
)

type fakeQueue struct {
	mu      sync.Mutex
	jobs    []*queue.Job
	retried []*queue.Job
}

func (f *fakeQueue) Dequeue(ctx context.Context, _ time.Duration) (*queue.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.jobs) == 0 {
		return nil, nil
	}
	job := f.jobs[0]
	f.jobs = f.jobs[1:]
	return job, nil
}

func (f *fakeQueue) Retry(_ context.Context, job *queue.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job.Attempt++
	f.retried = append(f.retried, job)
	return nil
}

type fakeDeliverer struct {
	mu        sync.Mutex
	delivered []string
	fail      bool
}

func (f *fakeDeliverer) Deliver(p *queue.EmailPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp down")
	}
	f.delivered = append(f.delivered, p.RecipientEmail)
	return nil
}

func emailJob(t *testing.T, id, to string) *queue.Job {
	t.Helper()
	payload, err := json.Marshal(queue.EmailPayload{RecipientEmail: to, Subject: "s"})
	require.NoError(t, err)
	return &queue.Job{ID: id, Type: queue.JobTypeEmail, Payload: payload}
}

func TestProcessDelivers(t *testing.T) {
	d := &fakeDeliverer{}
	w := NewEmailWorker(&fakeQueue{}, d, logger.NewNop(), time.Millisecond)

	require.NoError(t, w.Process(emailJob(t, "1", "anna@example.com")))
	assert.Equal(t, []string{"anna@example.com"}, d.delivered)
}

func TestProcessRejectsUnknownJob(t *testing.T) {
	w := NewEmailWorker(&fakeQueue{}, &fakeDeliverer{}, logger.NewNop(), time.Millisecond)
	assert.Error(t, w.Process(&queue.Job{ID: "x", Type: "other"}))
}

func TestRunRetriesFailedJobs(t *testing.T) {
	q := &fakeQueue{jobs: []*queue.Job{emailJob(t, "1", "anna@example.com")}}
	w := NewEmailWorker(q, &fakeDeliverer{fail: true}, logger.NewNop(), time.Millisecond)
	w.backoff = 0

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()
	require.Len(t, q.retried, 1)
	assert.Equal(t, 1, q.retried[0].Attempt)
}
