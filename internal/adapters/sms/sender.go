package sms

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the disabled sender.
var ErrNotConfigured = errors.New("sms sender not configured")

// Sender is the interface for sending one text message via an external
// provider.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}
