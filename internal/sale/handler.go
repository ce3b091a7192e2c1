package sale

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frahmantamala/retail-management/internal"
	"github.com/frahmantamala/retail-management/internal/transport"
)

type ServiceAPI interface {
	ListByCompany(companyID int64) ([]*Sale, error)
	Create(dto SaleDTO, companyID int64) (*Sale, error)
	Report(companyID int64, filter ReportFilter) (*Report, error)
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

func (h *Handler) ListSales(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.QueryInt64(r, "companyId")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "companyId is required")
		return
	}

	sales, err := h.Service.ListByCompany(companyID)
	if err != nil {
		h.Logger.Error("ListSales: failed to list", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list sales")
		return
	}

	h.WriteJSON(w, http.StatusOK, SalesResponse{Sales: sales})
}

func (h *Handler) CreateSale(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.QueryInt64(r, "companyId")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "companyId is required")
		return
	}

	var dto SaleDTO
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

// Report answers the dashboard query. The all-categories/all-products
// sentinel the client sends ("TUTTI") means no filter.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.QueryInt64(r, "companyId")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "companyId is required")
		return
	}

	query := r.URL.Query()
	filter := ReportFilter{
		From:     query.Get("from"),
		To:       query.Get("to"),
		Category: query.Get("category"),
		Product:  query.Get("product"),
	}
	if filter.Category == "TUTTI" {
		filter.Category = ""
	}
	if filter.Product == "TUTTI" {
		filter.Product = ""
	}

	report, err := h.Service.Report(companyID, filter)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, report)
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
	h.Logger.Error("sale operation failed", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
