package services

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a username/password pair. The token flow calls
// Verify before asking the TokenService for a token, so swapping in a real
// user store only means providing another implementation.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier accepts exactly one credential pair sourced from
// configuration. The password is bcrypt-hashed at construction so the plain
// text is not kept around and comparison goes through bcrypt.
type StaticVerifier struct {
	username     string
	passwordHash []byte
}

// NewStaticVerifier creates a verifier for the given pair.
func NewStaticVerifier(username, password string) *StaticVerifier {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// Only reachable when the configured password exceeds bcrypt's
		// 72-byte input limit.
		log.Fatalf("failed to hash configured password: %v", err)
	}
	return &StaticVerifier{
		username:     username,
		passwordHash: hash,
	}
}

// Verify reports whether the pair matches the configured credential.
func (v *StaticVerifier) Verify(username, password string) bool {
	if username != v.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
}
