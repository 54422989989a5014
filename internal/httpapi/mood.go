package httpapi

import (
	"net/http"

	"github.com/pairspace/backend/internal/domain/mood"
	"github.com/pairspace/backend/internal/httputil"
)

func (h *Handler) listMoods(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	moods, err := h.store.ListMoods(r.Context(), coupleID)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("list moods failed")
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, moods)
}

func (h *Handler) updateMood(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	var req mood.UpdateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	m, err := h.store.UpdateMood(r.Context(), coupleID, req)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("update mood failed")
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, m)
}
