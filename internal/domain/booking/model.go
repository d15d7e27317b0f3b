package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"localserve/internal/domain/sector"
)

// Domain errors
var (
	ErrMissingFields    = errors.New("name, mobile and address are required")
	ErrLocationRequired = errors.New("live location is required")
)

// Booking is a customer-submitted service request. Rows are insert-only;
// nothing in the application reads them back.
type Booking struct {
	ID         int64
	Name       string
	Mobile     string
	Address    string
	SectorKey  string
	Latitude   string
	Longitude  string
	GeoAddress string
	CreatedAt  time.Time
}

// New trims and validates submission fields and returns a Booking ready to
// persist. Coordinates are kept as the raw strings the client's geolocation
// produced; only presence is checked, both-or-neither.
// POST: Returns a validated Booking with CreatedAt unset, or an error
func New(name, mobile, address, sectorKey, latitude, longitude, geoAddress string) (Booking, error) {
	b := Booking{
		Name:       strings.TrimSpace(name),
		Mobile:     strings.TrimSpace(mobile),
		Address:    strings.TrimSpace(address),
		SectorKey:  strings.TrimSpace(sectorKey),
		Latitude:   strings.TrimSpace(latitude),
		Longitude:  strings.TrimSpace(longitude),
		GeoAddress: strings.TrimSpace(geoAddress),
	}
	if b.Name == "" || b.Mobile == "" || b.Address == "" {
		return Booking{}, ErrMissingFields
	}
	if !sector.Valid(b.SectorKey) {
		return Booking{}, sector.ErrUnknown
	}
	if b.Latitude == "" || b.Longitude == "" {
		return Booking{}, ErrLocationRequired
	}
	return b, nil
}

// Summary renders the booking as a short plaintext block for notifications.
// INVARIANT: Booking fields are not mutated
func (b *Booking) Summary() string {
	return strings.Join([]string{
		"Name: " + b.Name,
		"Mobile: " + b.Mobile,
		"Address: " + b.Address,
		"Sector: " + b.SectorKey,
		"Latitude: " + b.Latitude,
		"Longitude: " + b.Longitude,
		"Geo Address: " + b.GeoAddress,
	}, "\n")
}

// ShortSummary renders a single-line version for SMS bodies.
// INVARIANT: Booking fields are not mutated
func (b *Booking) ShortSummary() string {
	return fmt.Sprintf("New booking: %s, %s, %s, sector: %s, lat: %s, lng: %s",
		b.Name, b.Mobile, b.Address, b.SectorKey, b.Latitude, b.Longitude)
}

// SheetRow returns the booking as a spreadsheet row in column order, with
// the given timestamp appended as RFC 3339 UTC.
func (b *Booking) SheetRow(at time.Time) []string {
	return []string{
		b.Name,
		b.Mobile,
		b.Address,
		b.SectorKey,
		b.Latitude,
		b.Longitude,
		b.GeoAddress,
		at.UTC().Format(time.RFC3339),
	}
}
