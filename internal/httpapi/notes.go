package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pairspace/backend/internal/domain/note"
	"github.com/pairspace/backend/internal/httputil"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	notes, err := h.store.ListNotes(r.Context(), coupleID)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("list notes failed")
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, notes)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	var req note.CreateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	n, err := h.store.CreateNote(r.Context(), coupleID, req)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("create note failed")
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, n)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	noteID := mux.Vars(r)["id"]
	if err := h.store.DeleteNote(r.Context(), coupleID, noteID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
