package listing

import (
	"context"
	"database/sql"
	"fmt"

	domain "localserve/internal/domain/listing"
	"localserve/internal/domain/sector"
)

// tableHandle is a repository bound to one sector table. Handles are built
// once from the sector enumeration; lookup by key is the only way in.
type tableHandle struct {
	db    *sql.DB
	table string
}

// PostgresStore implements Store as a catalog of per-sector table handles.
type PostgresStore struct {
	handles map[string]tableHandle
}

// NewPostgresStore creates a catalog with one handle per enumerated sector.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	handles := make(map[string]tableHandle, len(sector.All))
	for _, s := range sector.All {
		table, _ := sector.Table(s.Key)
		handles[s.Key] = tableHandle{db: db, table: table}
	}
	return &PostgresStore{handles: handles}
}

func (s *PostgresStore) handle(sectorKey string) (tableHandle, error) {
	h, ok := s.handles[sectorKey]
	if !ok {
		return tableHandle{}, ErrUnknownSector
	}
	return h, nil
}

// ListBySector retrieves all listings for a sector, rating descending with
// ties broken by name ascending.
// POST: Returns the ordered listings, or ErrUnknownSector
func (s *PostgresStore) ListBySector(ctx context.Context, sectorKey string) ([]domain.Listing, error) {
	h, err := s.handle(sectorKey)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT id, name, description, rating, contact, address FROM %s ORDER BY rating DESC, name ASC",
		h.table,
	)
	rows, err := h.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", h.table, err)
	}
	defer rows.Close()

	var results []domain.Listing
	for rows.Next() {
		entity, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// GetByID retrieves one listing from a sector table.
// POST: Returns the listing, ErrNotFound, or ErrUnknownSector
func (s *PostgresStore) GetByID(ctx context.Context, sectorKey string, id int64) (domain.Listing, error) {
	h, err := s.handle(sectorKey)
	if err != nil {
		return domain.Listing{}, err
	}

	query := fmt.Sprintf(
		"SELECT id, name, description, rating, contact, address FROM %s WHERE id = $1",
		h.table,
	)
	entity, err := scanListing(h.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return domain.Listing{}, ErrNotFound
	}
	if err != nil {
		return domain.Listing{}, fmt.Errorf("get from %s: %w", h.table, err)
	}
	return entity, nil
}

// Create inserts a listing into a sector table.
// PRE: value has been validated
// POST: Returns the assigned id
func (s *PostgresStore) Create(ctx context.Context, sectorKey string, value domain.Listing) (int64, error) {
	h, err := s.handle(sectorKey)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (name, description, rating, contact, address) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		h.table,
	)
	var id int64
	err = h.db.QueryRowContext(ctx, query,
		value.Name,
		nullable(value.Description),
		value.Rating,
		nullable(value.Contact),
		nullable(value.Address),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", h.table, err)
	}
	return id, nil
}

// Update overwrites all editable fields of a listing.
// PRE: value has been validated and carries the target id
func (s *PostgresStore) Update(ctx context.Context, sectorKey string, value domain.Listing) error {
	h, err := s.handle(sectorKey)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		"UPDATE %s SET name = $1, description = $2, rating = $3, contact = $4, address = $5 WHERE id = $6",
		h.table,
	)
	_, err = h.db.ExecContext(ctx, query,
		value.Name,
		nullable(value.Description),
		value.Rating,
		nullable(value.Contact),
		nullable(value.Address),
		value.ID,
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", h.table, err)
	}
	return nil
}

// Delete removes a listing. Deleting an id that does not exist is not an
// error; it simply affects zero rows.
func (s *PostgresStore) Delete(ctx context.Context, sectorKey string, id int64) error {
	h, err := s.handle(sectorKey)
	if err != nil {
		return err
	}

	_, err = h.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", h.table), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", h.table, err)
	}
	return nil
}

// scanListing extracts a Listing from a row scanner function.
func scanListing(scan func(dest ...interface{}) error) (domain.Listing, error) {
	var entity domain.Listing
	var description, contact, address sql.NullString
	err := scan(
		&entity.ID,
		&entity.Name,
		&description,
		&entity.Rating,
		&contact,
		&address,
	)
	if err != nil {
		return domain.Listing{}, err
	}
	entity.Description = description.String
	entity.Contact = contact.String
	entity.Address = address.String
	return entity, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
