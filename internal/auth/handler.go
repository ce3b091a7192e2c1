package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/retail-management/internal"
	"github.com/frahmantamala/retail-management/internal/transport"
	"github.com/frahmantamala/retail-management/pkg/logger"
)

type ServiceAPI interface {
	Register(dto RegisterDTO) error
	Authenticate(dto LoginDTO) (*User, string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	GetUser(id int64) (*User, error)
}

// AuthResponse is the envelope both public endpoints answer with. Business
// rejections are reported as success=false at HTTP 200, which lets clients
// tell a rejected login apart from a transport failure.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.Service.Authenticate(dto)
	if err != nil {
		if isBusinessRejection(err) {
			h.Logger.Warn("login rejected", "email", dto.Email)
			h.WriteJSON(w, http.StatusOK, AuthResponse{Success: false, Message: "invalid email or password"})
			return
		}
		h.Logger.Error("login failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, AuthResponse{Success: true, Token: token, User: user})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Register(dto); err != nil {
		if isBusinessRejection(err) {
			h.Logger.Warn("registration rejected", "email", dto.Email, "reason", err.Error())
			h.WriteJSON(w, http.StatusOK, AuthResponse{Success: false, Message: err.Error()})
			return
		}
		h.Logger.Error("registration failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, AuthResponse{Success: true})
}

// AuthMiddleware gates every non-public route: a syntactically valid,
// signature-verified, unexpired bearer token or the request stops here.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := ContextWithClaims(r.Context(), claims)
		ctx = logger.With(ctx, "userID", claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isBusinessRejection separates rule violations users can fix from faults
// on our side.
func isBusinessRejection(err error) bool {
	var vErr ValidationError
	if errors.As(err, &vErr) {
		return true
	}
	if appErr, ok := internal.IsAppError(err); ok {
		return appErr.Type != internal.ErrorTypeInternal
	}
	return false
}
