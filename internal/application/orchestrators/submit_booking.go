package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"localserve/internal/domain/booking"
)

// BookingStoreForSubmit defines the store interface needed by SubmitBooking.
type BookingStoreForSubmit interface {
	Insert(ctx context.Context, value booking.Booking) (int64, error)
}

// SheetAppenderForSubmit is the spreadsheet side channel.
type SheetAppenderForSubmit interface {
	Append(ctx context.Context, row []string) error
}

// SubmitBookingInput carries raw form fields for a booking submission.
// Coordinates are client geolocation strings, passed through unparsed.
type SubmitBookingInput struct {
	Name       string
	Mobile     string
	Address    string
	SectorKey  string
	Latitude   string
	Longitude  string
	GeoAddress string
}

// SubmitBookingDeps holds dependencies for SubmitBooking.
type SubmitBookingDeps struct {
	BookingStore BookingStoreForSubmit
	Sheet        SheetAppenderForSubmit
	Notify       NotifyDeps
	Now          func() time.Time
}

// SubmitBookingResult carries the persisted booking plus the two
// independent side-channel outcomes.
type SubmitBookingResult struct {
	Booking  booking.Booking
	SheetOK  bool
	NotifyOK bool
}

// ExecuteSubmitBooking validates and persists a booking request, then
// attempts both best-effort side channels.
// POST: Exactly one booking row on success, zero rows on rejection;
// side-channel failure never rolls back the insert
func ExecuteSubmitBooking(ctx context.Context, input SubmitBookingInput, deps SubmitBookingDeps) (SubmitBookingResult, error) {
	b, err := booking.New(
		input.Name,
		input.Mobile,
		input.Address,
		input.SectorKey,
		input.Latitude,
		input.Longitude,
		input.GeoAddress,
	)
	if err != nil {
		return SubmitBookingResult{}, err
	}
	b.CreatedAt = deps.Now().UTC()

	id, err := deps.BookingStore.Insert(ctx, b)
	if err != nil {
		return SubmitBookingResult{}, err
	}
	b.ID = id

	// From here on the booking is durable. Both side channels are strictly
	// best-effort and subordinate to persistence.
	sheetOK := true
	if err := deps.Sheet.Append(ctx, b.SheetRow(b.CreatedAt)); err != nil {
		slog.Warn("booking_sheet_not_written", "error", err, "booking_id", id)
		sheetOK = false
	}

	notifyOK := ExecuteNotify(ctx, b, deps.Notify)

	slog.Info("booking_submitted",
		"booking_id", id,
		"sector", b.SectorKey,
		"sheet_ok", sheetOK,
		"notify_ok", notifyOK,
	)

	return SubmitBookingResult{Booking: b, SheetOK: sheetOK, NotifyOK: notifyOK}, nil
}
