package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frahmantamala/retail-management/internal"
	"github.com/frahmantamala/retail-management/internal/transport"
)

type ServiceAPI interface {
	ListByCompany(companyID int64) ([]*Category, error)
	Create(dto CategoryDTO, companyID int64) (*Category, error)
	Rename(dto CategoryDTO, companyID, id int64) error
	Delete(companyID, id int64) error
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

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.QueryInt64(r, "companyId")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "companyId is required")
		return
	}

	categories, err := h.Service.ListByCompany(companyID)
	if err != nil {
		h.Logger.Error("ListCategories: failed to list", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	h.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.QueryInt64(r, "companyId")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "companyId is required")
		return
	}

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(dto, companyID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, created)
}

func (h *Handler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.QueryInt64(r, "companyId")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "companyId is required")
		return
	}
	id, ok := h.QueryInt64(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "id is required")
		return
	}

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Rename(dto, companyID, id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, StatusResponse{Success: true})
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.QueryInt64(r, "companyId")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "companyId is required")
		return
	}
	id, ok := h.QueryInt64(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.Service.Delete(companyID, id); err != nil {
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
	if appErr, ok := internal.IsAppError(err); ok && appErr.Type != internal.ErrorTypeInternal {
		h.WriteError(w, appErr.StatusCode, appErr.Message)
		return
	}
	h.Logger.Error("category operation failed", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
