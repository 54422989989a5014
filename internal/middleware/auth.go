// Package middleware provides the HTTP middleware chain: auth gate, CORS,
// tracing, rate limiting, metrics and request timeouts.
package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/pairspace/backend/internal/errors"
	"github.com/pairspace/backend/internal/httputil"
	"github.com/pairspace/backend/internal/logging"
	"github.com/pairspace/backend/internal/storage"
	"github.com/pairspace/backend/internal/token"
)

// AuthMiddleware resolves a bearer token to a couple id before any domain
// handler runs. The token is either a signed session token or the raw couple
// key; both are resolved against the store, so a client-supplied couple id is
// never trusted.
type AuthMiddleware struct {
	couples storage.CoupleStore
	tokens  *token.Manager
	logger  *logging.Logger
}

// NewAuthMiddleware creates the auth gate.
func NewAuthMiddleware(couples storage.CoupleStore, tokens *token.Manager, logger *logging.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		couples: couples,
		tokens:  tokens,
		logger:  logger,
	}
}

// Handler returns the middleware handler.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.WriteError(w, errors.Unauthorized("missing authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			httputil.WriteError(w, errors.Unauthorized("invalid authorization header format"))
			return
		}

		key := parts[1]
		if m.tokens.Enabled() {
			// Session tokens carry the couple key; a raw key is still
			// accepted for direct API callers.
			if subject, err := m.tokens.Verify(key); err == nil {
				key = subject
			}
		}

		c, err := m.couples.GetCouple(r.Context(), key)
		if err != nil {
			if stderrors.Is(err, storage.ErrNotFound) {
				httputil.WriteError(w, errors.Unauthorized("invalid couple key"))
				return
			}
			m.logger.WithContext(r.Context()).WithError(err).Error("auth gate store lookup failed")
			httputil.WriteError(w, err)
			return
		}

		ctx := logging.WithCoupleID(r.Context(), c.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
