package orchestrators

import (
	"context"
	"log/slog"

	"localserve/internal/adapters/email"
	"localserve/internal/domain/booking"
)

// EmailSenderForNotify is the email side of the notification fan-out.
type EmailSenderForNotify interface {
	Send(ctx context.Context, req email.SendRequest) error
}

// SMSSenderForNotify is the SMS side of the notification fan-out.
type SMSSenderForNotify interface {
	Send(ctx context.Context, to, body string) error
}

// NotifyDeps holds the two sub-notifiers and their destinations. Either
// sender may be a disabled implementation; the caller cannot tell that
// apart from a delivery failure.
type NotifyDeps struct {
	Email   EmailSenderForNotify
	EmailTo string
	SMS     SMSSenderForNotify
	SMSTo   string
}

const notifySubject = "New Booking Request"

// ExecuteNotify attempts both notification sub-channels for a booking and
// reports whether at least one succeeded. Every failure, including
// not-configured, collapses to false; no error escapes to the caller.
// INVARIANT: The booking row is already durable; nothing here can undo it
func ExecuteNotify(ctx context.Context, b booking.Booking, deps NotifyDeps) bool {
	emailOK := false
	if err := deps.Email.Send(ctx, email.SendRequest{
		To:      deps.EmailTo,
		Subject: notifySubject,
		Text:    b.Summary(),
	}); err != nil {
		slog.Warn("booking_email_not_sent", "error", err)
	} else {
		emailOK = true
	}

	smsOK := false
	if err := deps.SMS.Send(ctx, deps.SMSTo, b.ShortSummary()); err != nil {
		slog.Warn("booking_sms_not_sent", "error", err)
	} else {
		smsOK = true
	}

	return emailOK || smsOK
}
