package user

import (
	"net/http"

	"github.com/frahmantamala/retail-management/internal"
	"github.com/frahmantamala/retail-management/internal/auth"
	"github.com/frahmantamala/retail-management/internal/transport"
)

// ProfileService is the slice of the auth service this handler needs.
type ProfileService interface {
	GetUser(id int64) (*auth.User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ProfileService
}

func NewHandler(baseHandler *transport.BaseHandler, service ProfileService) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// GetCurrentUser returns the profile behind the presented token. The record
// is re-read from the store so a stale token never serves stale data.
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	profile, err := h.Service.GetUser(claims.UserID)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeNotFound {
			h.WriteError(w, http.StatusUnauthorized, "user not found")
			return
		}
		h.Logger.Error("GetCurrentUser: lookup failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}
