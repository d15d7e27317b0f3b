package listing

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("name is required")
	ErrRatingRequired = errors.New("rating is required")
	ErrRatingInvalid  = errors.New("rating must be a number")
)

// Listing is a provider entry within exactly one sector table. Which table
// is decided at creation and never changes.
type Listing struct {
	ID          int64
	Name        string
	Description string // markdown, rendered at the HTTP layer
	Rating      float64
	Contact     string
	Address     string
}

// Validate checks if the Listing has valid data.
// POST: Returns nil if valid, error otherwise
func (l *Listing) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ParseRating parses a submitted rating value and normalizes it to one
// decimal place, the precision the store keeps.
func ParseRating(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrRatingRequired
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrRatingInvalid
	}
	return math.Round(r*10) / 10, nil
}

// Sort orders listings by rating descending, ties broken by name ascending.
// The catalog SQL applies the same ordering; this keeps retrieval output
// deterministic regardless of the store behind it.
func Sort(ls []Listing) {
	sort.SliceStable(ls, func(i, j int) bool {
		if ls[i].Rating != ls[j].Rating {
			return ls[i].Rating > ls[j].Rating
		}
		return ls[i].Name < ls[j].Name
	})
}
