package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"localserve/internal/adapters/http/middleware"
	"localserve/internal/application/orchestrators"
	"localserve/internal/domain/account"
	"localserve/internal/domain/booking"
	"localserve/internal/domain/sector"
)

// message is a flash-style advisory shown to the end user after an action.
type message struct {
	Level string `json:"level"` // success, warning, error
	Text  string `json:"text"`
}

func success(text string) message { return message{Level: "success", Text: text} }
func warning(text string) message { return message{Level: "warning", Text: text} }
func failure(text string) message { return message{Level: "error", Text: text} }

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderMarkdown converts a listing description to HTML. On render failure
// the raw text is returned untouched; clients escape it themselves.
func renderMarkdown(md string) string {
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return md
	}
	return buf.String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessages(w http.ResponseWriter, status int, msgs ...message) {
	writeJSON(w, status, map[string]any{"messages": msgs})
}

// internalError logs the real error and returns a generic message to the
// client, preventing leakage of internal details.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	writeMessages(w, http.StatusInternalServerError, failure("Something went wrong. Please try again."))
}

// sectorPayload is the wire shape of one enumerated sector.
type sectorPayload struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func allSectors() []sectorPayload {
	out := make([]sectorPayload, 0, len(sector.All))
	for _, s := range sector.All {
		out = append(out, sectorPayload{Key: s.Key, Name: s.Name})
	}
	return out
}

// Index handles GET /: the sector directory.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sectors": allSectors()})
}

// Register handles POST /register for customers.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessages(w, http.StatusBadRequest, failure("Invalid form submission."))
		return
	}

	input := orchestrators.RegisterInput{
		Email:    r.FormValue("email"),
		Mobile:   r.FormValue("mobile"),
		Password: r.FormValue("password"),
	}
	deps := orchestrators.RegisterDeps{AccountStore: h.stores.Users, Now: h.now}

	_, err := orchestrators.ExecuteRegister(r.Context(), input, deps)
	switch {
	case err == nil:
		writeMessages(w, http.StatusCreated, success("Account created. Please log in."))
	case errors.Is(err, orchestrators.ErrRegistrationInvalid):
		writeMessages(w, http.StatusBadRequest, failure("Provide email or mobile and a password."))
	case errors.Is(err, orchestrators.ErrAlreadyRegistered):
		writeMessages(w, http.StatusConflict, failure("Email or mobile already registered."))
	default:
		internalError(w, err)
	}
}

// Login handles POST /login for customers.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.stores.Users, account.KindUser, "Logged in successfully.")
}

// Logout handles POST /logout for customers.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.logout(w, r, middleware.UserCookieName, account.KindUser, "Logged out.")
}

// login runs one auth scope: credential check, session creation, cookie.
func (h *Handlers) login(w http.ResponseWriter, r *http.Request, store orchestrators.AccountStoreForLogin, kind, okText string) {
	if err := r.ParseForm(); err != nil {
		writeMessages(w, http.StatusBadRequest, failure("Invalid form submission."))
		return
	}

	input := orchestrators.LoginInput{
		Identifier: r.FormValue("identifier"),
		Password:   r.FormValue("password"),
	}
	deps := orchestrators.LoginDeps{AccountStore: store, Kind: kind}

	result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
	if err != nil {
		// Same advisory for unknown identifier and wrong password.
		writeMessages(w, http.StatusUnauthorized, failure("Invalid credentials."))
		return
	}

	token, err := h.sessions.Create(result.AccountID, result.Identifier, kind)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token, kind)
	writeMessages(w, http.StatusOK, success(okText))
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request, cookieName, kind, okText string) {
	if cookie, err := r.Cookie(cookieName); err == nil {
		h.sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w, kind)
	writeMessages(w, http.StatusOK, success(okText))
}

// BookForm handles GET /book: the data the booking form needs.
func (h *Handlers) BookForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sectors": allSectors()})
}

// SubmitBooking handles POST /book: validate, persist, then best-effort
// side channels. Each side channel reports as its own advisory.
func (h *Handlers) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessages(w, http.StatusBadRequest, failure("Invalid form submission."))
		return
	}

	input := orchestrators.SubmitBookingInput{
		Name:       r.FormValue("name"),
		Mobile:     r.FormValue("mobile"),
		Address:    r.FormValue("address"),
		SectorKey:  r.FormValue("sector"),
		Latitude:   r.FormValue("latitude"),
		Longitude:  r.FormValue("longitude"),
		GeoAddress: r.FormValue("geo_address"),
	}
	deps := orchestrators.SubmitBookingDeps{
		BookingStore: h.stores.Bookings,
		Sheet:        h.notifiers.Sheet,
		Notify:       h.notifiers.Notify,
		Now:          h.now,
	}

	result, err := orchestrators.ExecuteSubmitBooking(r.Context(), input, deps)
	switch {
	case err == nil:
		msgs := []message{success("Booking received.")}
		if result.SheetOK {
			msgs = append(msgs, success("Booking saved to Google Sheet."))
		} else {
			msgs = append(msgs, warning("Booking saved locally (Google Sheet not configured)."))
		}
		if result.NotifyOK {
			msgs = append(msgs, success("Notification sent."))
		} else {
			msgs = append(msgs, warning("Notification not sent (email/SMS not configured)."))
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"booking_id": result.Booking.ID,
			"messages":   msgs,
		})
	case errors.Is(err, booking.ErrMissingFields):
		writeMessages(w, http.StatusBadRequest, failure("Please fill all fields."))
	case errors.Is(err, sector.ErrUnknown):
		writeMessages(w, http.StatusBadRequest, failure("Unknown sector."))
	case errors.Is(err, booking.ErrLocationRequired):
		writeMessages(w, http.StatusBadRequest, failure("Live location is required. Please allow location access."))
	default:
		internalError(w, err)
	}
}

// listingPayload is the wire shape of one listing.
type listingPayload struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DescriptionHTML string  `json:"description_html,omitempty"`
	Rating          float64 `json:"rating"`
	Contact         string  `json:"contact,omitempty"`
	Address         string  `json:"address,omitempty"`
}

// SectorListings handles GET /sectors/{key}: the public per-sector view.
func (h *Handlers) SectorListings(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	deps := orchestrators.ListingDeps{ListingStore: h.stores.Listings}

	ls, err := orchestrators.ExecuteListSector(r.Context(), key, deps)
	if errors.Is(err, sector.ErrUnknown) {
		writeMessages(w, http.StatusNotFound, failure("Unknown sector."))
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	out := make([]listingPayload, 0, len(ls))
	for _, l := range ls {
		out = append(out, listingPayload{
			ID:              l.ID,
			Name:            l.Name,
			Description:     l.Description,
			DescriptionHTML: renderMarkdown(l.Description),
			Rating:          l.Rating,
			Contact:         l.Contact,
			Address:         l.Address,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sector":   sectorPayload{Key: key, Name: sector.DisplayName(key)},
		"listings": out,
	})
}

// Health handles GET /health: a trivial store round-trip.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Check(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status": "error",
			"detail": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
