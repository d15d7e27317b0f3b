package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"localserve/internal/adapters/http/middleware"
	accountStore "localserve/internal/adapters/storage/account"
	bookingStore "localserve/internal/adapters/storage/booking"
	listingStore "localserve/internal/adapters/storage/listing"
	"localserve/internal/application/orchestrators"
	"localserve/internal/config"
)

// Stores holds all storage dependencies.
type Stores struct {
	Users    accountStore.Store
	Admins   accountStore.Store
	Bookings bookingStore.Store
	Listings listingStore.Store
}

// HealthChecker is the store round-trip used by /health.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// Notifiers holds the wired side-channel collaborators. Any of them may be
// a disabled implementation.
type Notifiers struct {
	Sheet  orchestrators.SheetAppenderForSubmit
	Notify orchestrators.NotifyDeps
}

// Handlers carries the dependencies shared by all HTTP handlers.
type Handlers struct {
	stores    *Stores
	health    HealthChecker
	notifiers Notifiers
	sessions  *middleware.SessionStore
	now       func() time.Time
}

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewRouter wires the HTTP surface: public directory/booking routes, the
// two auth scopes, and the admin-gated listing CRUD.
func NewRouter(cfg config.App, s *Stores, health HealthChecker, n Notifiers) http.Handler {
	sessions := middleware.NewSessionStore()
	middleware.SecureCookies = cfg.Env == "production"

	h := &Handlers{
		stores:    s,
		health:    health,
		notifiers: n,
		sessions:  sessions,
		now:       time.Now,
	}

	secure := cfg.Env == "production"
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.SecurityHeaders,
		middleware.CSRF(loadCSRFKey(cfg), secure),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)

	// Public surface
	r.Get("/", h.Index)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/book", h.BookForm)
	r.Post("/book", h.SubmitBooking)
	r.Get("/sectors/{key}", h.SectorListings)
	r.Get("/health", h.Health)

	// Admin auth scope
	r.Post("/admin/login", h.AdminLogin)
	r.Post("/admin/logout", h.AdminLogout)

	// Admin-gated listing curation
	r.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Get("/admin/dashboard", h.AdminDashboard)
		admin.Post("/admin/sectors/{key}/listings", h.AdminCreateListing)
		admin.Get("/admin/sectors/{key}/listings/{id}", h.AdminGetListing)
		admin.Post("/admin/sectors/{key}/listings/{id}", h.AdminUpdateListing)
		admin.Post("/admin/sectors/{key}/listings/{id}/delete", h.AdminDeleteListing)
	})

	return r
}

// loadCSRFKey reads the CSRF secret (hex-encoded, 32 bytes) from config.
// In production the key MUST be set; in development a random key is
// generated per startup.
func loadCSRFKey(cfg config.App) []byte {
	if cfg.CSRFKey != "" {
		key, err := hex.DecodeString(cfg.CSRFKey)
		if err != nil || len(key) != 32 {
			log.Fatal("CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if cfg.Env == "production" {
		log.Fatal("CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set CSRF_KEY for production.")
	return key
}
