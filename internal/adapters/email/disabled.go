package email

import "context"

// DisabledSender is wired when email configuration is incomplete. It never
// attempts a connection.
type DisabledSender struct{}

// NewDisabledSender creates a new DisabledSender.
func NewDisabledSender() *DisabledSender {
	return &DisabledSender{}
}

// Send reports the sender as not configured.
func (s *DisabledSender) Send(_ context.Context, _ SendRequest) error {
	return ErrNotConfigured
}
