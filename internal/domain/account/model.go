package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Account kinds. Customers and admins live in disjoint tables with
// identical shape; Kind records which table an account came from.
const (
	KindUser  = "user"
	KindAdmin = "admin"
)

// Domain errors
var (
	ErrNoIdentifier  = errors.New("email or mobile is required")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrWrongPassword = errors.New("incorrect password")
)

// dummyHash is a real bcrypt cost-12 hash of an unguessable value.
// CheckPassword compares against it when the stored hash is empty, so the
// unknown-identifier path costs the same as the wrong-password path.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Account holds state for a customer or admin identity.
// At least one of Email/Mobile is present; each is unique within its table.
type Account struct {
	ID           int64
	Email        string
	Mobile       string
	PasswordHash string
	CreatedAt    time.Time
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" && strings.TrimSpace(a.Mobile) == "" {
		return ErrNoIdentifier
	}
	if a.PasswordHash == "" {
		return ErrEmptyPassword
	}
	return nil
}

// Identifier returns the preferred display identifier: email, else mobile.
// INVARIANT: Account fields are not mutated
func (a *Account) Identifier() string {
	if a.Email != "" {
		return a.Email
	}
	return a.Mobile
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	hash := a.PasswordHash
	if hash == "" {
		hash = dummyHash
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// BurnCompare performs a bcrypt comparison that always fails. Callers use it
// when no account matched an identifier, to equalize response timing with
// the wrong-password path.
func BurnCompare(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
