// path: operator/operator.go

// Package operator checks the credential that guards authority maintenance.
package operator

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verifier decides whether an id/password pair belongs to an operator.
type Verifier interface {
	Verify(id, password string) bool
}

// BcryptVerifier accepts a single operator id whose password matches a
// bcrypt hash.
type BcryptVerifier struct {
	id   string
	hash []byte
}

// New returns a BcryptVerifier, or a verifier that rejects everyone when
// either id or hash is empty.
func New(id, hash string) Verifier {
	if id == "" || hash == "" {
		return DenyAll{}
	}
	return &BcryptVerifier{id: id, hash: []byte(hash)}
}

func (v *BcryptVerifier) Verify(id, password string) bool {
	idOK := subtle.ConstantTimeCompare([]byte(id), []byte(v.id)) == 1
	pwOK := bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
	return idOK && pwOK
}

type DenyAll struct{}

func (DenyAll) Verify(string, string) bool { return false }

// HashPassword produces a value suitable for OPERATOR_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
