package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"localserve/internal/domain/account"
)

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	Create(ctx context.Context, value account.Account) (int64, error)
	Count(ctx context.Context) (int, error)
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AdminStore AccountStoreForSeed
	Now        func() time.Time
}

// ExecuteSeedAdmin creates the first admin account when the admin table is
// empty and seed credentials are configured. Idempotent across restarts.
// POST: At most one admin row is created, ever
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps, email, password string) error {
	if email == "" || password == "" {
		slog.Info("admin_seed_skipped", "reason", "not_configured")
		return nil
	}

	count, err := deps.AdminStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := account.Account{
		Email:     email,
		CreatedAt: deps.Now().UTC(),
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}

	id, err := deps.AdminStore.Create(ctx, admin)
	if err != nil {
		return err
	}
	slog.Info("admin_seeded", "account_id", id, "email", email)
	return nil
}
