package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/retail-management/internal/auth"
)

// MembershipChecker answers whether a user belongs to a company.
type MembershipChecker interface {
	IsMember(companyID, userID int64) (bool, error)
}

// RequireCompanyAccess gates tenant-scoped routes. When the request names a
// company via the companyId query parameter, the caller's membership is
// re-checked against the store; the token alone is never trusted for
// tenant access. Requests without the parameter pass through and the
// handler decides whether it was required.
func RequireCompanyAccess(checker MembershipChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.URL.Query().Get("companyId")
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, ok := auth.ClaimsFromContext(r.Context())
			if !ok || claims == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			companyID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				// an unparseable id can't be in anyone's membership set
				http.Error(w, "Forbidden: access denied to this company", http.StatusForbidden)
				return
			}

			member, err := checker.IsMember(companyID, claims.UserID)
			if err != nil {
				logger.Error("membership check failed", "company_id", companyID, "user_id", claims.UserID, "error", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if !member {
				logger.Warn("company access denied",
					"company_id", companyID,
					"user_id", claims.UserID)
				http.Error(w, "Forbidden: access denied to this company", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
