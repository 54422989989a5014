package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pairspace/backend/internal/domain/couple"
	"github.com/pairspace/backend/internal/logging"
	"github.com/pairspace/backend/internal/storage"
	"github.com/pairspace/backend/internal/storage/memory"
	"github.com/pairspace/backend/internal/token"
)

func newGate(t *testing.T, store storage.CoupleStore, secret string) *AuthMiddleware {
	t.Helper()
	return NewAuthMiddleware(store, token.NewManager(secret, time.Hour), logging.NewNop())
}

func registerCouple(t *testing.T, store *memory.Store) couple.Couple {
	t.Helper()
	c, err := store.CreateCouple(context.Background(), couple.RegisterRequest{Name1: "A", Name2: "B"})
	if err != nil {
		t.Fatalf("create couple: %v", err)
	}
	return c
}

func TestAuthGateRejectsMissingHeader(t *testing.T) {
	gate := newGate(t, memory.New(), "")
	handler := gate.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler body ran without credentials")
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/notes", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.Code)
	}
}

func TestAuthGateRejectsMalformedHeader(t *testing.T) {
	gate := newGate(t, memory.New(), "")
	handler := gate.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler body ran without credentials")
	}))

	for _, header := range []string{"ABC123", "Basic ABC123", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, resp.Code)
		}
	}
}

func TestAuthGateRejectsUnknownKey(t *testing.T) {
	gate := newGate(t, memory.New(), "")
	handler := gate.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler body ran with an unknown key")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer NOPE42")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.Code)
	}
}

func TestAuthGateResolvesRawKey(t *testing.T) {
	store := memory.New()
	c := registerCouple(t, store)
	gate := newGate(t, store, "")

	var gotCoupleID string
	handler := gate.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCoupleID = logging.GetCoupleID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer "+c.Key)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if gotCoupleID != c.ID {
		t.Errorf("couple id in context = %q, want %q", gotCoupleID, c.ID)
	}
}

func TestAuthGateResolvesSignedToken(t *testing.T) {
	store := memory.New()
	c := registerCouple(t, store)

	tokens := token.NewManager("test-secret", time.Hour)
	gate := NewAuthMiddleware(store, tokens, logging.NewNop())

	signed, err := tokens.Issue(c.Key)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var gotCoupleID string
	handler := gate.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCoupleID = logging.GetCoupleID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if gotCoupleID != c.ID {
		t.Errorf("couple id in context = %q, want %q", gotCoupleID, c.ID)
	}
}

func TestAuthGateStoreFailure(t *testing.T) {
	gate := newGate(t, storage.Disabled{}, "")
	handler := gate.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler body ran with a failing store")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer ABC123")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.Code)
	}
}
