package orchestrators

import (
	"context"
	"errors"
	"testing"

	accountStore "localserve/internal/adapters/storage/account"
	"localserve/internal/domain/account"
)

// mockAccountWriter implements AccountStoreForRegister and
// AccountStoreForSeed, enforcing identifier uniqueness like the real store.
type mockAccountWriter struct {
	created []account.Account
	err     error
}

func (m *mockAccountWriter) Create(_ context.Context, value account.Account) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	for _, existing := range m.created {
		if (value.Email != "" && existing.Email == value.Email) ||
			(value.Mobile != "" && existing.Mobile == value.Mobile) {
			return 0, accountStore.ErrDuplicate
		}
	}
	m.created = append(m.created, value)
	return int64(len(m.created)), nil
}

func (m *mockAccountWriter) Count(_ context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.created), nil
}

func TestExecuteRegister_EmailOnly(t *testing.T) {
	store := &mockAccountWriter{}
	deps := RegisterDeps{AccountStore: store, Now: fixedNow}

	id, err := ExecuteRegister(context.Background(), RegisterInput{Email: "pat@example.com", Password: "secret"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}
	created := store.created[0]
	if created.Email != "pat@example.com" || created.Mobile != "" {
		t.Errorf("unexpected stored account: %+v", created)
	}
	if created.PasswordHash == "" || created.PasswordHash == "secret" {
		t.Error("password must be stored hashed")
	}
	if !created.CreatedAt.Equal(fixedTime) {
		t.Errorf("expected server timestamp, got %v", created.CreatedAt)
	}
}

func TestExecuteRegister_MobileOnly(t *testing.T) {
	deps := RegisterDeps{AccountStore: &mockAccountWriter{}, Now: fixedNow}
	if _, err := ExecuteRegister(context.Background(), RegisterInput{Mobile: "0211234567", Password: "secret"}, deps); err != nil {
		t.Errorf("mobile-only registration should succeed: %v", err)
	}
}

func TestExecuteRegister_Invalid(t *testing.T) {
	store := &mockAccountWriter{}
	deps := RegisterDeps{AccountStore: store, Now: fixedNow}

	cases := []RegisterInput{
		{Password: "secret"},                  // no identifier
		{Email: "pat@example.com"},            // no password
		{Email: "  ", Mobile: "", Password: "secret"}, // whitespace identifier
	}
	for _, in := range cases {
		if _, err := ExecuteRegister(context.Background(), in, deps); !errors.Is(err, ErrRegistrationInvalid) {
			t.Errorf("input %+v: expected ErrRegistrationInvalid, got %v", in, err)
		}
	}
	if len(store.created) != 0 {
		t.Errorf("validation failures must not write, got %d rows", len(store.created))
	}
}

func TestExecuteRegister_Duplicate(t *testing.T) {
	store := &mockAccountWriter{}
	deps := RegisterDeps{AccountStore: store, Now: fixedNow}
	input := RegisterInput{Email: "pat@example.com", Password: "secret"}

	if _, err := ExecuteRegister(context.Background(), input, deps); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := ExecuteRegister(context.Background(), input, deps); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}
	if len(store.created) != 1 {
		t.Errorf("expected a single row, got %d", len(store.created))
	}
}
