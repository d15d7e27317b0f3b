package email

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the disabled sender. Callers collapse it
// into the same "not sent" outcome as a delivery failure.
var ErrNotConfigured = errors.New("email sender not configured")

// SendRequest contains the data needed to send one plaintext email.
type SendRequest struct {
	To      string
	Subject string
	Text    string
}

// Sender is the interface for sending emails via an external provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) error
}
