package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"localserve/internal/adapters/http/middleware"
	listingStore "localserve/internal/adapters/storage/listing"
	"localserve/internal/application/orchestrators"
	"localserve/internal/domain/account"
	"localserve/internal/domain/listing"
	"localserve/internal/domain/sector"
)

// AdminLogin handles POST /admin/login against the admin table.
func (h *Handlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.stores.Admins, account.KindAdmin, "Admin logged in.")
}

// AdminLogout handles POST /admin/logout.
func (h *Handlers) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.logout(w, r, middleware.AdminCookieName, account.KindAdmin, "Admin logged out.")
}

// AdminDashboard handles GET /admin/dashboard?sector=. An unknown or
// missing sector falls back to the first sector, matching the curation UI
// always having an active tab.
func (h *Handlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("sector")
	if !sector.Valid(key) {
		key = sector.Default().Key
	}

	deps := orchestrators.ListingDeps{ListingStore: h.stores.Listings}
	ls, err := orchestrators.ExecuteListSector(r.Context(), key, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sectors":       allSectors(),
		"active_sector": key,
		"listings":      adminListings(ls),
	})
}

// AdminCreateListing handles POST /admin/sectors/{key}/listings.
func (h *Handlers) AdminCreateListing(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessages(w, http.StatusBadRequest, failure("Invalid form submission."))
		return
	}

	input := listingInputFromForm(r)
	input.SectorKey = chi.URLParam(r, "key")
	deps := orchestrators.ListingDeps{ListingStore: h.stores.Listings}

	created, err := orchestrators.ExecuteCreateListing(r.Context(), input, deps)
	if err != nil {
		h.writeListingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"listing_id": created.ID,
		"messages":   []message{success("Listing added.")},
	})
}

// AdminGetListing handles GET /admin/sectors/{key}/listings/{id}: the data
// the edit view needs.
func (h *Handlers) AdminGetListing(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deps := orchestrators.ListingDeps{ListingStore: h.stores.Listings}
	l, err := orchestrators.ExecuteGetListing(r.Context(), key, id, deps)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{
			"sector":  sectorPayload{Key: key, Name: sector.DisplayName(key)},
			"listing": adminListing(l),
		})
	case errors.Is(err, sector.ErrUnknown):
		writeMessages(w, http.StatusNotFound, failure("Unknown sector."))
	case errors.Is(err, listingStore.ErrNotFound):
		writeMessages(w, http.StatusNotFound, failure("Listing not found."))
	default:
		internalError(w, err)
	}
}

// AdminUpdateListing handles POST /admin/sectors/{key}/listings/{id}.
func (h *Handlers) AdminUpdateListing(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessages(w, http.StatusBadRequest, failure("Invalid form submission."))
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	input := listingInputFromForm(r)
	input.SectorKey = chi.URLParam(r, "key")
	deps := orchestrators.ListingDeps{ListingStore: h.stores.Listings}

	if err := orchestrators.ExecuteUpdateListing(r.Context(), id, input, deps); err != nil {
		h.writeListingError(w, err)
		return
	}
	writeMessages(w, http.StatusOK, success("Listing updated."))
}

// AdminDeleteListing handles POST /admin/sectors/{key}/listings/{id}/delete.
// Deleting a nonexistent id succeeds; the delete is idempotent.
func (h *Handlers) AdminDeleteListing(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deps := orchestrators.ListingDeps{ListingStore: h.stores.Listings}
	if err := orchestrators.ExecuteDeleteListing(r.Context(), key, id, deps); err != nil {
		if errors.Is(err, sector.ErrUnknown) {
			writeMessages(w, http.StatusNotFound, failure("Unknown sector."))
			return
		}
		internalError(w, err)
		return
	}
	writeMessages(w, http.StatusOK, success("Listing deleted."))
}

func (h *Handlers) writeListingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sector.ErrUnknown):
		writeMessages(w, http.StatusNotFound, failure("Unknown sector."))
	case errors.Is(err, listing.ErrEmptyName),
		errors.Is(err, listing.ErrRatingRequired),
		errors.Is(err, listing.ErrRatingInvalid):
		writeMessages(w, http.StatusBadRequest, failure("Name and rating are required."))
	default:
		internalError(w, err)
	}
}

func listingInputFromForm(r *http.Request) orchestrators.ListingInput {
	return orchestrators.ListingInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Rating:      r.FormValue("rating"),
		Contact:     r.FormValue("contact"),
		Address:     r.FormValue("address"),
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeMessages(w, http.StatusBadRequest, failure("Invalid listing id."))
		return 0, false
	}
	return id, true
}

// adminListing returns the admin wire shape: raw markdown only, since the
// edit form round-trips the source text.
func adminListing(l listing.Listing) listingPayload {
	return listingPayload{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Rating:      l.Rating,
		Contact:     l.Contact,
		Address:     l.Address,
	}
}

func adminListings(ls []listing.Listing) []listingPayload {
	out := make([]listingPayload, 0, len(ls))
	for _, l := range ls {
		out = append(out, adminListing(l))
	}
	return out
}
