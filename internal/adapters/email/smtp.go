package email

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// SMTPSender sends emails through a plain SMTP relay with STARTTLS.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a sender for the given relay.
// PRE: host/port/user/pass identify a reachable SMTP server; from is a valid sender address
// POST: Returns a ready-to-use sender; no connection is made yet
func NewSMTPSender(host string, port int, user, pass, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

// Send dials the relay and delivers one plaintext message.
// POST: Message delivered, or an error describing the SMTP failure
func (s *SMTPSender) Send(_ context.Context, req SendRequest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", req.To)
	m.SetHeader("Subject", req.Subject)
	m.SetBody("text/plain", req.Text)

	if err := s.dialer.DialAndSend(m); err != nil {
		slog.Error("smtp_send_failed", "error", err, "to", req.To, "subject", req.Subject)
		return fmt.Errorf("smtp send failed: %w", err)
	}
	slog.Info("smtp_sent", "to", req.To, "subject", req.Subject)
	return nil
}
