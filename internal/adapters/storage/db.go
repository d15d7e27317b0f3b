package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"localserve/internal/config"
	"localserve/internal/domain/sector"
)

// Open connects to Postgres and verifies the connection.
// PRE: cfg carries complete connection parameters
// POST: Returns a pooled connection handle, or an error
func Open(cfg config.Database) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return db, nil
}

// InitSchema creates all tables idempotently. It runs once in main before
// the server starts serving traffic.
// POST: users, admins, bookings and one table per sector exist
func InitSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT UNIQUE,
		mobile TEXT UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		email TEXT UNIQUE,
		mobile TEXT UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		mobile TEXT NOT NULL,
		address TEXT NOT NULL,
		sector_key TEXT NOT NULL,
		latitude TEXT,
		longitude TEXT,
		geo_address TEXT,
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	// One listing table per sector. Table names come from the fixed
	// enumeration, never from request input.
	for _, s := range sector.All {
		table, _ := sector.Table(s.Key)
		ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			rating NUMERIC(2,1) NOT NULL,
			contact TEXT,
			address TEXT
		)`, table)
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}
	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate email/mobile on registration).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// HealthChecker performs the health-check store round-trip.
type HealthChecker struct {
	db *sql.DB
}

// NewHealthChecker wraps a connection handle for health checks.
func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Check runs a trivial round-trip against the store.
// POST: Returns nil when the store answered, the store error otherwise
func (h *HealthChecker) Check(ctx context.Context) error {
	var one int
	if err := h.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("store round-trip: %w", err)
	}
	return nil
}
