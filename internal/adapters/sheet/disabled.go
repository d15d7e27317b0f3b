package sheet

import "context"

// DisabledAppender is wired when sheet configuration is incomplete.
type DisabledAppender struct{}

// NewDisabledAppender creates a new DisabledAppender.
func NewDisabledAppender() *DisabledAppender {
	return &DisabledAppender{}
}

// Append reports the appender as not configured.
func (a *DisabledAppender) Append(_ context.Context, _ []string) error {
	return ErrNotConfigured
}
