package orchestrators

import (
	"context"
	"errors"
	"testing"

	"localserve/internal/domain/account"
)

// mockAccountReader implements AccountStoreForLogin backed by a map keyed
// on both email and mobile.
type mockAccountReader struct {
	accounts map[string]account.Account
}

func (m *mockAccountReader) GetByIdentifier(_ context.Context, identifier string) (account.Account, error) {
	if a, ok := m.accounts[identifier]; ok {
		return a, nil
	}
	return account.Account{}, errors.New("not found")
}

func readerWith(t *testing.T, email, mobile, password string) *mockAccountReader {
	t.Helper()
	a := account.Account{ID: 7, Email: email, Mobile: mobile}
	if err := a.SetPassword(password); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	m := &mockAccountReader{accounts: make(map[string]account.Account)}
	if email != "" {
		m.accounts[email] = a
	}
	if mobile != "" {
		m.accounts[mobile] = a
	}
	return m
}

func TestExecuteLogin_Success(t *testing.T) {
	deps := LoginDeps{AccountStore: readerWith(t, "pat@example.com", "021", "secret"), Kind: "user"}

	result, err := ExecuteLogin(context.Background(), LoginInput{Identifier: "pat@example.com", Password: "secret"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AccountID != 7 {
		t.Errorf("expected account id 7, got %d", result.AccountID)
	}
	if result.Identifier != "pat@example.com" {
		t.Errorf("unexpected identifier %q", result.Identifier)
	}
}

func TestExecuteLogin_ByMobile(t *testing.T) {
	deps := LoginDeps{AccountStore: readerWith(t, "", "021", "secret"), Kind: "user"}

	result, err := ExecuteLogin(context.Background(), LoginInput{Identifier: "021", Password: "secret"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Identifier != "021" {
		t.Errorf("unexpected identifier %q", result.Identifier)
	}
}

// TestExecuteLogin_UniformRejection: unknown identifier and wrong password
// must be indistinguishable to the caller.
func TestExecuteLogin_UniformRejection(t *testing.T) {
	deps := LoginDeps{AccountStore: readerWith(t, "pat@example.com", "", "secret"), Kind: "user"}

	_, errUnknown := ExecuteLogin(context.Background(), LoginInput{Identifier: "nobody@example.com", Password: "secret"}, deps)
	_, errWrong := ExecuteLogin(context.Background(), LoginInput{Identifier: "pat@example.com", Password: "nope"}, deps)

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("unknown identifier: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrong)
	}
	if errUnknown != errWrong {
		t.Error("both failure paths must return the same sentinel")
	}
}

func TestExecuteLogin_EmptyInput(t *testing.T) {
	deps := LoginDeps{AccountStore: &mockAccountReader{}, Kind: "user"}
	for _, in := range []LoginInput{{}, {Identifier: "pat@example.com"}, {Password: "secret"}, {Identifier: "  ", Password: " "}} {
		if _, err := ExecuteLogin(context.Background(), in, deps); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("input %+v: expected ErrInvalidCredentials, got %v", in, err)
		}
	}
}
