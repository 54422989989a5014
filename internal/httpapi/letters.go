package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pairspace/backend/internal/domain/letter"
	"github.com/pairspace/backend/internal/httputil"
)

func (h *Handler) listLetters(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	letters, err := h.store.ListLetters(r.Context(), coupleID)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("list letters failed")
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, letters)
}

func (h *Handler) createLetter(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	var req letter.CreateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	l, err := h.store.CreateLetter(r.Context(), coupleID, req)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("create letter failed")
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, l)
}

func (h *Handler) openLetter(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	l, err := h.store.OpenLetter(r.Context(), coupleID, mux.Vars(r)["id"])
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) archiveLetter(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	l, err := h.store.ArchiveLetter(r.Context(), coupleID, mux.Vars(r)["id"])
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, l)
}
