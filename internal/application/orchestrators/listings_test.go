package orchestrators

import (
	"context"
	"errors"
	"testing"

	listingStore "localserve/internal/adapters/storage/listing"
	"localserve/internal/domain/listing"
	"localserve/internal/domain/sector"
)

// mockListingStore implements ListingStoreForCatalog with one slice per
// sector key. ListBySector returns entries unordered so the orchestrator's
// sort is observable.
type mockListingStore struct {
	bySector map[string][]listing.Listing
	nextID   int64
}

func newMockListingStore() *mockListingStore {
	return &mockListingStore{bySector: make(map[string][]listing.Listing)}
}

func (m *mockListingStore) ListBySector(_ context.Context, sectorKey string) ([]listing.Listing, error) {
	out := make([]listing.Listing, len(m.bySector[sectorKey]))
	copy(out, m.bySector[sectorKey])
	return out, nil
}

func (m *mockListingStore) GetByID(_ context.Context, sectorKey string, id int64) (listing.Listing, error) {
	for _, l := range m.bySector[sectorKey] {
		if l.ID == id {
			return l, nil
		}
	}
	return listing.Listing{}, listingStore.ErrNotFound
}

func (m *mockListingStore) Create(_ context.Context, sectorKey string, value listing.Listing) (int64, error) {
	m.nextID++
	value.ID = m.nextID
	m.bySector[sectorKey] = append(m.bySector[sectorKey], value)
	return value.ID, nil
}

func (m *mockListingStore) Update(_ context.Context, sectorKey string, value listing.Listing) error {
	for i, l := range m.bySector[sectorKey] {
		if l.ID == value.ID {
			m.bySector[sectorKey][i] = value
			return nil
		}
	}
	return listingStore.ErrNotFound
}

func (m *mockListingStore) Delete(_ context.Context, sectorKey string, id int64) error {
	ls := m.bySector[sectorKey]
	for i, l := range ls {
		if l.ID == id {
			m.bySector[sectorKey] = append(ls[:i], ls[i+1:]...)
			return nil
		}
	}
	return nil // idempotent
}

// TestExecuteListSector_Ordering pins rating-descending with name-ascending
// tie breaks regardless of insertion order.
func TestExecuteListSector_Ordering(t *testing.T) {
	store := newMockListingStore()
	store.bySector["hotel"] = []listing.Listing{
		{ID: 1, Name: "Gamma", Rating: 4.0},
		{ID: 2, Name: "Beta", Rating: 4.5},
		{ID: 3, Name: "Alpha", Rating: 4.0},
	}
	deps := ListingDeps{ListingStore: store}

	ls, err := ExecuteListSector(context.Background(), "hotel", deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Beta", "Alpha", "Gamma"}
	if len(ls) != len(want) {
		t.Fatalf("expected %d listings, got %d", len(want), len(ls))
	}
	for i, name := range want {
		if ls[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, ls[i].Name)
		}
	}
}

func TestExecuteListSector_Empty(t *testing.T) {
	deps := ListingDeps{ListingStore: newMockListingStore()}
	ls, err := ExecuteListSector(context.Background(), "hospital", deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ls) != 0 {
		t.Errorf("expected empty result, got %d", len(ls))
	}
}

func TestExecuteListSector_UnknownSector(t *testing.T) {
	deps := ListingDeps{ListingStore: newMockListingStore()}
	if _, err := ExecuteListSector(context.Background(), "plumbing", deps); !errors.Is(err, sector.ErrUnknown) {
		t.Errorf("expected sector.ErrUnknown, got %v", err)
	}
}

func TestExecuteCreateListing(t *testing.T) {
	store := newMockListingStore()
	deps := ListingDeps{ListingStore: store}

	l, err := ExecuteCreateListing(context.Background(), ListingInput{
		SectorKey: "hotel",
		Name:      "  Harbour View  ",
		Rating:    "4.5",
		Contact:   "03 555 0101",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ID != 1 {
		t.Errorf("expected id from store, got %d", l.ID)
	}
	if l.Name != "Harbour View" {
		t.Errorf("name not trimmed: %q", l.Name)
	}
	if len(store.bySector["hotel"]) != 1 {
		t.Fatalf("expected one stored listing, got %d", len(store.bySector["hotel"]))
	}
}

func TestExecuteCreateListing_Validation(t *testing.T) {
	store := newMockListingStore()
	deps := ListingDeps{ListingStore: store}

	cases := []struct {
		input ListingInput
		want  error
	}{
		{ListingInput{SectorKey: "plumbing", Name: "X", Rating: "4"}, sector.ErrUnknown},
		{ListingInput{SectorKey: "hotel", Name: "", Rating: "4"}, listing.ErrEmptyName},
		{ListingInput{SectorKey: "hotel", Name: "X", Rating: ""}, listing.ErrRatingRequired},
		{ListingInput{SectorKey: "hotel", Name: "X", Rating: "four"}, listing.ErrRatingInvalid},
	}
	for _, c := range cases {
		if _, err := ExecuteCreateListing(context.Background(), c.input, deps); !errors.Is(err, c.want) {
			t.Errorf("input %+v: expected %v, got %v", c.input, c.want, err)
		}
	}
	if len(store.bySector["hotel"]) != 0 {
		t.Errorf("validation failures must not write, got %d rows", len(store.bySector["hotel"]))
	}
}

func TestExecuteUpdateListing(t *testing.T) {
	store := newMockListingStore()
	store.bySector["medical"] = []listing.Listing{{ID: 4, Name: "Old Name", Rating: 3.0}}
	deps := ListingDeps{ListingStore: store}

	err := ExecuteUpdateListing(context.Background(), 4, ListingInput{
		SectorKey: "medical",
		Name:      "New Name",
		Rating:    "4.0",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := store.bySector["medical"][0]
	if got.Name != "New Name" || got.Rating != 4.0 {
		t.Errorf("listing not updated: %+v", got)
	}
}

func TestExecuteGetListing_NotFound(t *testing.T) {
	deps := ListingDeps{ListingStore: newMockListingStore()}
	if _, err := ExecuteGetListing(context.Background(), "hotel", 99, deps); !errors.Is(err, listingStore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestExecuteDeleteListing_Idempotent: deleting an absent id succeeds.
func TestExecuteDeleteListing_Idempotent(t *testing.T) {
	store := newMockListingStore()
	store.bySector["hotel"] = []listing.Listing{{ID: 1, Name: "Only", Rating: 4.0}}
	deps := ListingDeps{ListingStore: store}

	if err := ExecuteDeleteListing(context.Background(), "hotel", 1, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ExecuteDeleteListing(context.Background(), "hotel", 1, deps); err != nil {
		t.Errorf("second delete of the same id must succeed, got %v", err)
	}
	if len(store.bySector["hotel"]) != 0 {
		t.Errorf("expected empty sector, got %d", len(store.bySector["hotel"]))
	}
}
