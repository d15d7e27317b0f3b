package sheet

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the disabled appender.
var ErrNotConfigured = errors.New("sheet appender not configured")

// Appender appends one row of booking fields to an external spreadsheet.
type Appender interface {
	Append(ctx context.Context, row []string) error
}
