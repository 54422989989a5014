// Package token issues and verifies session tokens. A token is an HS256 JWT
// whose subject is the couple key; the auth gate still resolves the key
// against the store, so the token never grants access to a deleted or
// unknown couple. With no signing secret configured, tokens degrade to the
// raw couple key.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and verifies session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager. An empty secret disables signing:
// Issue returns the couple key itself.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Enabled reports whether a signing secret is configured.
func (m *Manager) Enabled() bool { return len(m.secret) > 0 }

// Issue returns a bearer token for the given couple key.
func (m *Manager) Issue(coupleKey string) (string, error) {
	if !m.Enabled() {
		return coupleKey, nil
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   coupleKey,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a signed token and returns the couple key it carries.
func (m *Manager) Verify(tokenString string) (string, error) {
	if !m.Enabled() {
		return "", fmt.Errorf("token signing not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("session token carries no subject")
	}
	return claims.Subject, nil
}
