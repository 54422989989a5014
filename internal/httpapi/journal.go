package httpapi

import (
	"net/http"

	"github.com/pairspace/backend/internal/domain/journal"
	"github.com/pairspace/backend/internal/httputil"
)

func (h *Handler) listJournal(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	entries, err := h.store.ListJournalEntries(r.Context(), coupleID)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("list journal entries failed")
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) createJournalEntry(w http.ResponseWriter, r *http.Request) {
	coupleID, ok := h.coupleID(w, r)
	if !ok {
		return
	}

	var req journal.CreateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	entry, err := h.store.CreateJournalEntry(r.Context(), coupleID, req)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("create journal entry failed")
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, entry)
}
