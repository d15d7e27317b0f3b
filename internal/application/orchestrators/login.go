package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"localserve/internal/domain/account"
)

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByIdentifier(ctx context.Context, identifier string) (account.Account, error)
}

// LoginInput carries input for the login orchestrator. Identifier matches
// either the stored email or mobile.
type LoginInput struct {
	Identifier string
	Password   string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	AccountID  int64
	Identifier string
}

// LoginDeps holds dependencies for Login. Kind names the auth scope
// (user or admin) and is used for logging only.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
	Kind         string
}

// ErrInvalidCredentials is the single rejection for every login failure.
// It never reveals which of identifier/password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ExecuteLogin validates credentials and returns account info for session
// creation. The unknown-identifier path burns a bcrypt compare so both
// failure paths cost the same.
// POST: Returns account info on success, ErrInvalidCredentials otherwise
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	identifier := strings.TrimSpace(input.Identifier)
	password := strings.TrimSpace(input.Password)
	if identifier == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	acct, err := deps.AccountStore.GetByIdentifier(ctx, identifier)
	if err != nil {
		account.BurnCompare(password)
		slog.Info("auth_event", "event", "login_failed", "kind", deps.Kind, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := acct.CheckPassword(password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "kind", deps.Kind, "reason", "wrong_password")
		return LoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "kind", deps.Kind, "account_id", acct.ID)

	return LoginResult{
		AccountID:  acct.ID,
		Identifier: acct.Identifier(),
	}, nil
}
