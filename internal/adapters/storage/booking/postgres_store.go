package booking

import (
	"context"
	"database/sql"
	"fmt"

	domain "localserve/internal/domain/booking"
)

// PostgresStore implements Store using Postgres.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new BookingStore.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Insert persists a booking row.
// PRE: value has been validated and carries a server-assigned CreatedAt
// POST: Returns the assigned id
func (s *PostgresStore) Insert(ctx context.Context, value domain.Booking) (int64, error) {
	query := `
	INSERT INTO bookings (name, mobile, address, sector_key, latitude, longitude, geo_address, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		value.Name,
		value.Mobile,
		value.Address,
		value.SectorKey,
		value.Latitude,
		value.Longitude,
		nullable(value.GeoAddress),
		value.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	return id, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
