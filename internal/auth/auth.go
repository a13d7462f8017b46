// Package auth verifies the admin credential and keeps the persisted
// logged-in flag.
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"loadup-backend/internal/store"
)

// Verifier checks a submitted credential pair. Swapping the comparison
// strategy (hashes, an identity provider) means swapping this collaborator,
// nothing else.
type Verifier interface {
	Verify(email, password string) bool
}

// StaticVerifier compares against a single configured credential. The
// password is held as a bcrypt hash, never in the clear.
type StaticVerifier struct {
	email string
	hash  []byte
}

// NewStaticVerifier hashes the configured password once at construction.
func NewStaticVerifier(email, password string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &StaticVerifier{email: email, hash: hash}, nil
}

// Verify reports whether both email and password match. It never reports
// which of the two was wrong.
func (v *StaticVerifier) Verify(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	passOK := bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
	return emailOK && passOK
}

// Session persists the single operator's logged-in flag in the keyed store.
type Session struct {
	store store.Store
}

func NewSession(s store.Store) *Session {
	return &Session{store: s}
}

// LogIn marks the operator as authenticated.
func (s *Session) LogIn() error {
	return store.Write(s.store, store.KeyAdminFlag, true)
}

// LogOut clears the flag.
func (s *Session) LogOut() error {
	return store.Write(s.store, store.KeyAdminFlag, false)
}

// IsAdmin reads the flag, defaulting to false when unset or unreadable.
func (s *Session) IsAdmin() bool {
	return store.Read(s.store, store.KeyAdminFlag, false)
}
