package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCredentialsMismatch is returned when login or password do not match.
var ErrCredentialsMismatch = errors.New("credentials mismatch")

// PasswordHasher defines hashing strategy for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher uses bcrypt to hash passwords.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with provided cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns bcrypt hash for provided password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare checks password against stored hash.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// Account is the single back office identity configured for the service.
type Account struct {
	Login        string
	PasswordHash string
}

// Match verifies provided credentials against the account.
// An account without a password hash never matches.
func (a Account) Match(hasher PasswordHasher, login, password string) error {
	if a.PasswordHash == "" || login == "" || password == "" {
		return ErrCredentialsMismatch
	}
	loginOK := subtle.ConstantTimeCompare([]byte(a.Login), []byte(login)) == 1
	if err := hasher.Compare(a.PasswordHash, password); err != nil || !loginOK {
		return ErrCredentialsMismatch
	}
	return nil
}
