package notifier

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/pkg/logger"
	"github.com/m04kA/tourism-booking-service/pkg/queue"
)

type fakeQueue struct {
	payloads []queue.EmailPayload
	err      error
}

func (f *fakeQueue) EnqueueEmail(_ context.Context, payload queue.EmailPayload) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.payloads = append(f.payloads, payload)
	return "job-1", nil
}

func TestQueueSenderEnqueues(t *testing.T) {
	q := &fakeQueue{}
	s := NewQueueSender(q, logger.NewNop())

	require.NoError(t, s.Send(context.Background(), "tour_booking_created", "anna@example.com", "Hi", "Body"))
	require.Len(t, q.payloads, 1)
	assert.Equal(t, "anna@example.com", q.payloads[0].RecipientEmail)
	assert.Equal(t, "tour_booking_created", q.payloads[0].Kind)
}

func TestQueueSenderErrors(t *testing.T) {
	s := NewQueueSender(&fakeQueue{err: errors.New("redis down")}, logger.NewNop())

	assert.ErrorIs(t, s.Send(context.Background(), "k", "anna@example.com", "s", "b"), ErrEnqueue)
	assert.ErrorIs(t, s.Send(context.Background(), "k", " ", "s", "b"), ErrEmptyRecipient)
}

func TestLogSender(t *testing.T) {
	s := NewLogSender(logger.NewNop())

	assert.NoError(t, s.Send(context.Background(), "k", "anna@example.com", "s", "b"))
	assert.ErrorIs(t, s.Send(context.Background(), "k", "", "s", "b"), ErrEmptyRecipient)
}

func TestSMTPDelivererBuildsMessage(t *testing.T) {
	d := NewSMTPDeliverer("smtp.local", 2525, "", "", "bookings@tourism.local")
	d.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	var gotAddr string
	var gotTo []string
	var gotMsg string
	d.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	err := d.Deliver(&queue.EmailPayload{RecipientEmail: "anna@example.com", Subject: "Hello", Body: "Text"})
	require.NoError(t, err)
	assert.Equal(t, "smtp.local:2525", gotAddr)
	assert.Equal(t, []string{"anna@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Hello\r\n")
	assert.Contains(t, gotMsg, "\r\n\r\nText\r\n")
}

func TestSMTPDelivererWrapsErrors(t *testing.T) {
	d := NewSMTPDeliverer("smtp.local", 25, "user", "pass", "from@x")
	d.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("554") }

	err := d.Deliver(&queue.EmailPayload{RecipientEmail: "a@b"})
	assert.ErrorIs(t, err, ErrDeliver)
}
