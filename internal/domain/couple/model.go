// Package couple defines the two-person account unit. The shared secret key
// is the identity: it is both the credential and the storage path segment.
package couple

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/pairspace/backend/internal/errors"
)

// KeyLength is the length of a generated couple key.
const KeyLength = 6

// keyAlphabet holds the characters a generated key is drawn from.
const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Couple is the account record. Created once at registration and immutable
// thereafter; there is no deletion endpoint.
type Couple struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Name1     string `json:"name1,omitempty"`
	Name2     string `json:"name2,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// RegisterRequest creates a new couple.
type RegisterRequest struct {
	Name1 string `json:"name1"`
	Name2 string `json:"name2"`
}

// Validate checks the registration input.
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name1) == "" {
		return errors.Validation("name1 is required")
	}
	if strings.TrimSpace(r.Name2) == "" {
		return errors.Validation("name2 is required")
	}
	return nil
}

// AuthRequest logs in with an existing couple key.
type AuthRequest struct {
	Key string `json:"key"`
}

// Validate checks the login input.
func (r AuthRequest) Validate() error {
	if r.Key == "" {
		return errors.Validation("key is required")
	}
	return nil
}

// NewKey generates a random 6-character uppercase alphanumeric key. Occupancy
// checking and retry are the store's responsibility.
func NewKey() (string, error) {
	b := make([]byte, KeyLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate couple key: %w", err)
	}
	for i := range b {
		b[i] = keyAlphabet[int(b[i])%len(keyAlphabet)]
	}
	return string(b), nil
}
