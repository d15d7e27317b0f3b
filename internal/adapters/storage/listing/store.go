package listing

import (
	"context"
	"errors"

	domain "localserve/internal/domain/listing"
)

// Store errors
var (
	ErrUnknownSector = errors.New("unknown sector")
	ErrNotFound      = errors.New("listing not found")
)

// Store reads and writes listings across the per-sector tables. Every
// operation takes the sector key; the implementation routes it to a typed
// table handle, never into query text.
type Store interface {
	ListBySector(ctx context.Context, sectorKey string) ([]domain.Listing, error)
	GetByID(ctx context.Context, sectorKey string, id int64) (domain.Listing, error)
	Create(ctx context.Context, sectorKey string, value domain.Listing) (int64, error)
	Update(ctx context.Context, sectorKey string, value domain.Listing) error
	Delete(ctx context.Context, sectorKey string, id int64) error
}
