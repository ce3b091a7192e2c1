package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/retail-management/internal/auth"
	"github.com/frahmantamala/retail-management/internal/category"
	"github.com/frahmantamala/retail-management/internal/company"
	"github.com/frahmantamala/retail-management/internal/product"
	"github.com/frahmantamala/retail-management/internal/sale"
	"github.com/frahmantamala/retail-management/internal/transport/middleware"
	"github.com/frahmantamala/retail-management/internal/transport/swagger"
	"github.com/frahmantamala/retail-management/internal/user"
)

// RegisterAllRoutes wires the full HTTP surface. Route classes, evaluated
// outside-in: public (auth, health, preflight), authenticated (valid
// session token), tenant-scoped (token + company membership via the
// companyId query parameter). Owner-only checks live in the company service.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins string,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	companyHandler *company.Handler,
	categoryHandler *category.Handler,
	productHandler *product.Handler,
	saleHandler *sale.Handler,
	membership middleware.MembershipChecker,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec at root, UI under /swagger
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// public auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/register", authHandler.Register)
		})

		// everything below requires a valid session token
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/users/me", userHandler.GetCurrentUser)

			pr.Route("/companies", func(cr chi.Router) {
				cr.Get("/", companyHandler.ListCompanies)
				cr.Post("/", companyHandler.CreateCompany)
				cr.Post("/join", companyHandler.JoinCompany)
				cr.Delete("/{companyID}/members/{userID}", companyHandler.RemoveMember)
			})

			// tenant-scoped resources: membership in the company named by
			// ?companyId is re-checked on every request
			pr.Group(func(tr chi.Router) {
				tr.Use(middleware.RequireCompanyAccess(membership, logger))

				tr.Route("/categories", func(rr chi.Router) {
					rr.Get("/", categoryHandler.ListCategories)
					rr.Post("/", categoryHandler.CreateCategory)
					rr.Put("/", categoryHandler.RenameCategory)
					rr.Delete("/", categoryHandler.DeleteCategory)
				})

				tr.Route("/products", func(rr chi.Router) {
					rr.Get("/", productHandler.ListProducts)
					rr.Post("/", productHandler.CreateProduct)
					rr.Put("/", productHandler.UpdateProduct)
					rr.Delete("/", productHandler.DeleteProduct)
				})

				tr.Route("/sales", func(rr chi.Router) {
					rr.Get("/", saleHandler.ListSales)
					rr.Post("/", saleHandler.CreateSale)
				})

				tr.Get("/reports", saleHandler.Report)
			})
		})
	})
}
