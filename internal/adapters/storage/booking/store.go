package booking

import (
	"context"

	domain "localserve/internal/domain/booking"
)

// Store persists Booking state. Bookings are insert-only.
type Store interface {
	Insert(ctx context.Context, value domain.Booking) (int64, error)
}
