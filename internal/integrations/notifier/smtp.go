package notifier

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/m04kA/tourism-booking-service/pkg/queue"
)

// SendMailFunc сигнатура smtp.SendMail
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPDeliverer доставляет письма из очереди через SMTP
type SMTPDeliverer struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail SendMailFunc
	now      func() time.Time
}

// NewSMTPDeliverer создает доставщика; при пустом username авторизация не используется
func NewSMTPDeliverer(host string, port int, username, password, from string) *SMTPDeliverer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPDeliverer{
		addr:     fmt.Sprintf("%s:%d", host, port),
		from:     from,
		auth:     auth,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
}

// Deliver отправляет одно письмо
func (d *SMTPDeliverer) Deliver(payload *queue.EmailPayload) error {
	if strings.TrimSpace(payload.RecipientEmail) == "" {
		return ErrEmptyRecipient
	}

	msg := buildMessage(d.from, payload.RecipientEmail, payload.Subject, payload.Body, d.now())
	if err := d.sendMail(d.addr, d.auth, d.from, []string{payload.RecipientEmail}, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliver, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string, at time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Date: " + at.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
