// Package httputil provides JSON request/response helpers shared by the API
// handlers and middleware.
package httputil

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pairspace/backend/internal/errors"
	"github.com/pairspace/backend/internal/storage"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError writes a taxonomy error as a JSON response. Storage sentinels
// map to their taxonomy kind; anything unknown is wrapped as internal so raw
// error text never leaks.
func WriteError(w http.ResponseWriter, err error) {
	var se *errors.ServiceError
	switch {
	case stderrors.Is(err, storage.ErrNotFound):
		se = errors.NotFound("record not found")
	case stderrors.Is(err, storage.ErrNotInitialized):
		se = errors.StoreNotInitialized()
	default:
		se = errors.FromError(err)
	}
	WriteJSON(w, se.HTTPStatus, map[string]interface{}{"error": se})
}

// DecodeJSON decodes the request body into v. A malformed body is a
// validation error.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return errors.Validation("invalid request body").WithCause(err)
	}
	return nil
}
