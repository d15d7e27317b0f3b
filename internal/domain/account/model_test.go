package account

import (
	"strings"
	"testing"
)

// TestSetAndCheckPassword round-trips a password through the bcrypt hash.
func TestSetAndCheckPassword(t *testing.T) {
	a := Account{Email: "pat@example.com"}
	if err := a.SetPassword("correct horse battery"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PasswordHash == "" || a.PasswordHash == "correct horse battery" {
		t.Fatal("password was not hashed")
	}
	if !strings.HasPrefix(a.PasswordHash, "$2a$12$") {
		t.Errorf("expected bcrypt cost 12 hash, got %s", a.PasswordHash[:7])
	}
	if err := a.CheckPassword("correct horse battery"); err != nil {
		t.Errorf("expected password to verify: %v", err)
	}
	if err := a.CheckPassword("wrong"); err != ErrWrongPassword {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

func TestSetPasswordEmpty(t *testing.T) {
	a := Account{}
	if err := a.SetPassword(""); err != ErrEmptyPassword {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
}

// TestCheckPasswordEmptyHash never verifies, but also never panics; the
// dummy-hash compare keeps the path timing-uniform.
func TestCheckPasswordEmptyHash(t *testing.T) {
	a := Account{}
	if err := a.CheckPassword("anything"); err != ErrWrongPassword {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	a := Account{Email: "pat@example.com", PasswordHash: "x"}
	if err := a.Validate(); err != nil {
		t.Errorf("email-only account should be valid: %v", err)
	}

	a = Account{Mobile: "0211234567", PasswordHash: "x"}
	if err := a.Validate(); err != nil {
		t.Errorf("mobile-only account should be valid: %v", err)
	}

	a = Account{PasswordHash: "x"}
	if err := a.Validate(); err != ErrNoIdentifier {
		t.Errorf("expected ErrNoIdentifier, got %v", err)
	}

	a = Account{Email: "pat@example.com"}
	if err := a.Validate(); err != ErrEmptyPassword {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestIdentifier(t *testing.T) {
	a := Account{Email: "pat@example.com", Mobile: "0211234567"}
	if a.Identifier() != "pat@example.com" {
		t.Errorf("email should win, got %s", a.Identifier())
	}
	a = Account{Mobile: "0211234567"}
	if a.Identifier() != "0211234567" {
		t.Errorf("expected mobile fallback, got %s", a.Identifier())
	}
}
