package account

import (
	"context"
	"errors"

	domain "localserve/internal/domain/account"
)

// Store errors
var (
	ErrNotFound  = errors.New("account not found")
	ErrDuplicate = errors.New("email or mobile already registered")
)

// Store persists Account state for one account table (users or admins).
type Store interface {
	Create(ctx context.Context, value domain.Account) (int64, error)
	GetByIdentifier(ctx context.Context, identifier string) (domain.Account, error)
	Count(ctx context.Context) (int, error)
}
