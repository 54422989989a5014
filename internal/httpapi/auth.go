package httpapi

import (
	stderrors "errors"
	"net/http"

	"github.com/pairspace/backend/internal/domain/couple"
	"github.com/pairspace/backend/internal/errors"
	"github.com/pairspace/backend/internal/httputil"
	"github.com/pairspace/backend/internal/storage"
)

// authResponse is the login/register payload: the couple record plus the
// session token and the resolved couple id.
type authResponse struct {
	couple.Couple
	CoupleID string `json:"coupleId"`
	Token    string `json:"token"`
}

func (h *Handler) authResponse(w http.ResponseWriter, status int, c couple.Couple) {
	tok, err := h.tokens.Issue(c.Key)
	if err != nil {
		httputil.WriteError(w, errors.Internal("failed to issue session token", err))
		return
	}
	httputil.WriteJSON(w, status, authResponse{Couple: c, CoupleID: c.ID, Token: tok})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req couple.AuthRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	c, err := h.store.GetCouple(r.Context(), req.Key)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			httputil.WriteError(w, errors.Unauthorized("invalid couple key"))
			return
		}
		h.logger.WithContext(r.Context()).WithError(err).Error("login lookup failed")
		httputil.WriteError(w, err)
		return
	}

	h.authResponse(w, http.StatusOK, c)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req couple.RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	c, err := h.store.CreateCouple(r.Context(), req)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("couple registration failed")
		httputil.WriteError(w, err)
		return
	}

	h.authResponse(w, http.StatusCreated, c)
}
