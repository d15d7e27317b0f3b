package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"localserve/internal/domain/listing"
	"localserve/internal/domain/sector"
)

// ListingStoreForCatalog defines the store interface needed by the listing
// use cases.
type ListingStoreForCatalog interface {
	ListBySector(ctx context.Context, sectorKey string) ([]listing.Listing, error)
	GetByID(ctx context.Context, sectorKey string, id int64) (listing.Listing, error)
	Create(ctx context.Context, sectorKey string, value listing.Listing) (int64, error)
	Update(ctx context.Context, sectorKey string, value listing.Listing) error
	Delete(ctx context.Context, sectorKey string, id int64) error
}

// ListingDeps holds dependencies for the listing use cases.
type ListingDeps struct {
	ListingStore ListingStoreForCatalog
}

// ListingInput carries raw form fields for create/update.
type ListingInput struct {
	SectorKey   string
	Name        string
	Description string
	Rating      string
	Contact     string
	Address     string
}

func (in ListingInput) toDomain() (listing.Listing, error) {
	rating, err := listing.ParseRating(in.Rating)
	if err != nil {
		return listing.Listing{}, err
	}
	l := listing.Listing{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Rating:      rating,
		Contact:     strings.TrimSpace(in.Contact),
		Address:     strings.TrimSpace(in.Address),
	}
	if err := l.Validate(); err != nil {
		return listing.Listing{}, err
	}
	return l, nil
}

// ExecuteListSector retrieves a sector's listings, rating descending with
// ties broken by name ascending. Public; no auth gate.
// POST: Returns the ordered listings, or sector.ErrUnknown
func ExecuteListSector(ctx context.Context, sectorKey string, deps ListingDeps) ([]listing.Listing, error) {
	if !sector.Valid(sectorKey) {
		return nil, sector.ErrUnknown
	}
	ls, err := deps.ListingStore.ListBySector(ctx, sectorKey)
	if err != nil {
		return nil, err
	}
	listing.Sort(ls)
	return ls, nil
}

// ExecuteGetListing retrieves one listing for the admin edit view.
func ExecuteGetListing(ctx context.Context, sectorKey string, id int64, deps ListingDeps) (listing.Listing, error) {
	if !sector.Valid(sectorKey) {
		return listing.Listing{}, sector.ErrUnknown
	}
	return deps.ListingStore.GetByID(ctx, sectorKey, id)
}

// ExecuteCreateListing adds a listing to a sector table.
// POST: One listing row on success; no write on validation failure
func ExecuteCreateListing(ctx context.Context, input ListingInput, deps ListingDeps) (listing.Listing, error) {
	if !sector.Valid(input.SectorKey) {
		return listing.Listing{}, sector.ErrUnknown
	}
	l, err := input.toDomain()
	if err != nil {
		return listing.Listing{}, err
	}

	id, err := deps.ListingStore.Create(ctx, input.SectorKey, l)
	if err != nil {
		return listing.Listing{}, err
	}
	l.ID = id

	slog.Info("listing_created", "sector", input.SectorKey, "listing_id", id)
	return l, nil
}

// ExecuteUpdateListing overwrites a listing's editable fields.
// POST: The row is updated in place; a nonexistent id affects zero rows
func ExecuteUpdateListing(ctx context.Context, id int64, input ListingInput, deps ListingDeps) error {
	if !sector.Valid(input.SectorKey) {
		return sector.ErrUnknown
	}
	l, err := input.toDomain()
	if err != nil {
		return err
	}
	l.ID = id

	if err := deps.ListingStore.Update(ctx, input.SectorKey, l); err != nil {
		return err
	}
	slog.Info("listing_updated", "sector", input.SectorKey, "listing_id", id)
	return nil
}

// ExecuteDeleteListing removes a listing. Idempotent: deleting an id that
// does not exist succeeds and changes nothing.
func ExecuteDeleteListing(ctx context.Context, sectorKey string, id int64, deps ListingDeps) error {
	if !sector.Valid(sectorKey) {
		return sector.ErrUnknown
	}
	if err := deps.ListingStore.Delete(ctx, sectorKey, id); err != nil {
		return err
	}
	slog.Info("listing_deleted", "sector", sectorKey, "listing_id", id)
	return nil
}
