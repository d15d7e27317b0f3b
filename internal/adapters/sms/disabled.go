package sms

import "context"

// DisabledSender is wired when SMS configuration is incomplete.
type DisabledSender struct{}

// NewDisabledSender creates a new DisabledSender.
func NewDisabledSender() *DisabledSender {
	return &DisabledSender{}
}

// Send reports the sender as not configured.
func (s *DisabledSender) Send(_ context.Context, _, _ string) error {
	return ErrNotConfigured
}
