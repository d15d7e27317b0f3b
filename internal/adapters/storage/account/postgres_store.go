package account

import (
	"context"
	"database/sql"
	"fmt"

	"localserve/internal/adapters/storage"
	domain "localserve/internal/domain/account"
)

// Account tables. Customers and admins have identical shape but are
// deliberately disjoint; a store is bound to exactly one table.
const (
	TableUsers  = "users"
	TableAdmins = "admins"
)

// PostgresStore implements Store over one fixed account table.
type PostgresStore struct {
	db    *sql.DB
	table string
	kind  string
}

// NewUsersStore creates a Store over the customer table.
func NewUsersStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, table: TableUsers, kind: domain.KindUser}
}

// NewAdminsStore creates a Store over the admin table.
func NewAdminsStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, table: TableAdmins, kind: domain.KindAdmin}
}

// Create inserts a new account row.
// PRE: value has been validated
// POST: Returns the assigned id; ErrDuplicate on a uniqueness conflict
func (s *PostgresStore) Create(ctx context.Context, value domain.Account) (int64, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (email, mobile, password_hash, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		s.table,
	)
	var id int64
	err := s.db.QueryRowContext(ctx, query,
		nullable(value.Email),
		nullable(value.Mobile),
		value.PasswordHash,
		value.CreatedAt,
	).Scan(&id)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert %s: %w", s.kind, err)
	}
	return id, nil
}

// GetByIdentifier retrieves an account whose email or mobile matches.
// Uniqueness of each field means at most one row can match.
// POST: Returns the account or ErrNotFound
func (s *PostgresStore) GetByIdentifier(ctx context.Context, identifier string) (domain.Account, error) {
	query := fmt.Sprintf(
		"SELECT id, email, mobile, password_hash, created_at FROM %s WHERE email = $1 OR mobile = $1",
		s.table,
	)
	row := s.db.QueryRowContext(ctx, query, identifier)

	var entity domain.Account
	var email, mobile sql.NullString
	err := row.Scan(&entity.ID, &email, &mobile, &entity.PasswordHash, &entity.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.Account{}, ErrNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("query %s: %w", s.kind, err)
	}
	entity.Email = email.String
	entity.Mobile = mobile.String
	return entity, nil
}

// Count returns the number of rows in the account table.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table)).Scan(&count)
	return count, err
}

// nullable maps "" to NULL so partially-identified accounts don't collide
// on the unique index.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
