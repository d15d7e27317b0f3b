package booking

import (
	"strings"
	"testing"
	"time"

	"localserve/internal/domain/sector"
)

func TestNewValid(t *testing.T) {
	b, err := New("  Pat  ", " 0211234567 ", " 12 High St ", "hotel", "-41.28", "174.77", " near the station ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Name != "Pat" || b.Mobile != "0211234567" || b.Address != "12 High St" {
		t.Errorf("fields not trimmed: %+v", b)
	}
	if b.GeoAddress != "near the station" {
		t.Errorf("geo address not trimmed: %q", b.GeoAddress)
	}
	if !b.CreatedAt.IsZero() {
		t.Error("CreatedAt must be unset; the server assigns it at persist time")
	}
}

func TestNewGeoAddressOptional(t *testing.T) {
	if _, err := New("Pat", "021", "addr", "hotel", "-41.28", "174.77", ""); err != nil {
		t.Errorf("geo address is optional: %v", err)
	}
}

func TestNewMissingFields(t *testing.T) {
	cases := []struct {
		name, mobile, address string
	}{
		{"", "021", "addr"},
		{"Pat", "", "addr"},
		{"Pat", "021", ""},
		{"   ", "021", "addr"}, // whitespace-only counts as empty
	}
	for _, c := range cases {
		if _, err := New(c.name, c.mobile, c.address, "hotel", "1", "2", ""); err != ErrMissingFields {
			t.Errorf("New(%q,%q,%q): expected ErrMissingFields, got %v", c.name, c.mobile, c.address, err)
		}
	}
}

func TestNewUnknownSector(t *testing.T) {
	if _, err := New("Pat", "021", "addr", "plumbing", "1", "2", ""); err != sector.ErrUnknown {
		t.Errorf("expected sector.ErrUnknown, got %v", err)
	}
}

// TestNewLocationRequired rejects when either coordinate is absent;
// both-or-neither is checked before any write.
func TestNewLocationRequired(t *testing.T) {
	cases := []struct{ lat, lng string }{
		{"", "174.77"},
		{"-41.28", ""},
		{"", ""},
	}
	for _, c := range cases {
		if _, err := New("Pat", "021", "addr", "hotel", c.lat, c.lng, ""); err != ErrLocationRequired {
			t.Errorf("lat=%q lng=%q: expected ErrLocationRequired, got %v", c.lat, c.lng, err)
		}
	}
}

// TestNewLooseCoordinates: presence is the only check; any non-empty
// client geolocation string passes through unchanged.
func TestNewLooseCoordinates(t *testing.T) {
	b, err := New("Pat", "021", "addr", "hotel", "not-a-number", "also-not", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Latitude != "not-a-number" || b.Longitude != "also-not" {
		t.Errorf("coordinates altered: %q %q", b.Latitude, b.Longitude)
	}
}

func TestSummary(t *testing.T) {
	b := Booking{Name: "Pat", Mobile: "021", Address: "addr", SectorKey: "hotel", Latitude: "1", Longitude: "2"}
	s := b.Summary()
	for _, want := range []string{"Name: Pat", "Mobile: 021", "Sector: hotel", "Latitude: 1"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestSheetRow(t *testing.T) {
	b := Booking{Name: "Pat", Mobile: "021", Address: "addr", SectorKey: "hotel", Latitude: "1", Longitude: "2", GeoAddress: "geo"}
	at := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	row := b.SheetRow(at)
	if len(row) != 8 {
		t.Fatalf("expected 8 columns, got %d", len(row))
	}
	if row[7] != "2026-08-29T10:30:00Z" {
		t.Errorf("expected RFC 3339 UTC timestamp, got %s", row[7])
	}
}
