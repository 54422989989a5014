// Package httpapi exposes the REST API. Each handler validates its input,
// invokes exactly one persistence gateway operation with the couple id the
// auth gate resolved, and maps failures onto the error taxonomy.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pairspace/backend/internal/errors"
	"github.com/pairspace/backend/internal/httputil"
	"github.com/pairspace/backend/internal/logging"
	"github.com/pairspace/backend/internal/storage"
	"github.com/pairspace/backend/internal/token"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Handler bundles the API dependencies.
type Handler struct {
	store     storage.Store
	tokens    *token.Manager
	logger    *logging.Logger
	startTime time.Time
}

// New creates the API handler.
func New(store storage.Store, tokens *token.Manager, logger *logging.Logger) *Handler {
	return &Handler{
		store:     store,
		tokens:    tokens,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Router builds the route table. authGate wraps every /api route except the
// auth endpoints; routes registered first win, so login and register stay
// open. rateLimit runs after the gate on protected routes so it keys on the
// resolved couple id; the open auth routes get it directly, keyed by remote
// address.
func (h *Handler) Router(authGate, rateLimit mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, errors.NotFound("route not found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, errors.MethodNotAllowed())
	})

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.Handle("/api/auth/login", rateLimit(http.HandlerFunc(h.login))).Methods(http.MethodPost)
	r.Handle("/api/auth/register", rateLimit(http.HandlerFunc(h.register))).Methods(http.MethodPost)

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(authGate)
	protected.Use(rateLimit)
	protected.HandleFunc("/mood", h.listMoods).Methods(http.MethodGet)
	protected.HandleFunc("/mood", h.updateMood).Methods(http.MethodPost)
	protected.HandleFunc("/notes", h.listNotes).Methods(http.MethodGet)
	protected.HandleFunc("/notes", h.createNote).Methods(http.MethodPost)
	protected.HandleFunc("/notes/{id}", h.deleteNote).Methods(http.MethodDelete)
	protected.HandleFunc("/letters", h.listLetters).Methods(http.MethodGet)
	protected.HandleFunc("/letters", h.createLetter).Methods(http.MethodPost)
	protected.HandleFunc("/letters/{id}/open", h.openLetter).Methods(http.MethodPost)
	protected.HandleFunc("/letters/{id}/archive", h.archiveLetter).Methods(http.MethodPost)
	protected.HandleFunc("/journal", h.listJournal).Methods(http.MethodGet)
	protected.HandleFunc("/journal", h.createJournalEntry).Methods(http.MethodPost)

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "couplespace",
		"version": Version,
		"uptime":  time.Since(h.startTime).String(),
	})
}

// coupleID returns the couple id the auth gate attached to the request
// context. An empty id means the route was wired without the gate, which is
// a programming error, not a client one.
func (h *Handler) coupleID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := logging.GetCoupleID(r.Context())
	if id == "" {
		h.logger.WithContext(r.Context()).Error("protected handler reached without couple id")
		httputil.WriteError(w, errors.Internal("request not authenticated", nil))
		return "", false
	}
	return id, true
}
