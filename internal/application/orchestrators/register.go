package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	accountStore "localserve/internal/adapters/storage/account"
	"localserve/internal/domain/account"
)

// AccountStoreForRegister defines the store interface needed by Register.
type AccountStoreForRegister interface {
	Create(ctx context.Context, value account.Account) (int64, error)
}

// RegisterInput carries input for customer registration. At least one of
// Email/Mobile is required.
type RegisterInput struct {
	Email    string
	Mobile   string
	Password string
}

// RegisterDeps holds dependencies for Register.
type RegisterDeps struct {
	AccountStore AccountStoreForRegister
	Now          func() time.Time
}

// Orchestrator errors
var (
	ErrRegistrationInvalid = errors.New("provide email or mobile and a password")
	ErrAlreadyRegistered   = errors.New("email or mobile already registered")
)

// ExecuteRegister creates a customer account.
// POST: One account row on success; ErrAlreadyRegistered on a uniqueness
// conflict; no write on validation failure
func ExecuteRegister(ctx context.Context, input RegisterInput, deps RegisterDeps) (int64, error) {
	email := strings.TrimSpace(input.Email)
	mobile := strings.TrimSpace(input.Mobile)
	password := strings.TrimSpace(input.Password)

	if (email == "" && mobile == "") || password == "" {
		return 0, ErrRegistrationInvalid
	}

	acct := account.Account{
		Email:     email,
		Mobile:    mobile,
		CreatedAt: deps.Now().UTC(),
	}
	if err := acct.SetPassword(password); err != nil {
		return 0, err
	}

	id, err := deps.AccountStore.Create(ctx, acct)
	if err != nil {
		if errors.Is(err, accountStore.ErrDuplicate) {
			slog.Info("auth_event", "event", "register_conflict")
			return 0, ErrAlreadyRegistered
		}
		return 0, err
	}

	slog.Info("auth_event", "event", "registered", "account_id", id)
	return id, nil
}
