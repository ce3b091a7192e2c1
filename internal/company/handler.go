package company

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/retail-management/internal"
	"github.com/frahmantamala/retail-management/internal/auth"
	"github.com/frahmantamala/retail-management/internal/transport"
)

type ServiceAPI interface {
	ListForUser(userID int64) ([]*Company, error)
	Create(dto CreateCompanyDTO, ownerID int64, ownerEmail string) (*Company, error)
	Join(dto JoinCompanyDTO, userID int64) (*Company, error)
	RemoveMember(companyID, targetUserID int64, requesterID int64, requesterEmail string) error
	IsMember(companyID, userID int64) (bool, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	companies, err := h.Service.ListForUser(claims.UserID)
	if err != nil {
		h.Logger.Error("ListCompanies: failed to list memberships", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	h.WriteJSON(w, http.StatusOK, CompaniesResponse{Companies: companies})
}

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var dto CreateCompanyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(dto, claims.UserID, claims.Email)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, created)
}

func (h *Handler) JoinCompany(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var dto JoinCompanyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	joined, err := h.Service.Join(dto, claims.UserID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, joined)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	companyID, err := strconv.ParseInt(chi.URLParam(r, "companyID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid company id")
		return
	}
	targetUserID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.Service.RemoveMember(companyID, targetUserID, claims.UserID, claims.Email); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, StatusResponse{Success: true})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var vErr ValidationError
	if errors.As(err, &vErr) {
		h.WriteError(w, http.StatusBadRequest, vErr.Error())
		return
	}
	if appErr, ok := internal.IsAppError(err); ok {
		if appErr.Type == internal.ErrorTypeInternal {
			h.Logger.Error("company operation failed", "error", err)
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		h.WriteError(w, appErr.StatusCode, appErr.Message)
		return
	}
	h.Logger.Error("company operation failed", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
