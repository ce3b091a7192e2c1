package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/retail-management/internal"
	"github.com/frahmantamala/retail-management/internal/auth"
	authPostgres "github.com/frahmantamala/retail-management/internal/auth/postgres"
	"github.com/frahmantamala/retail-management/internal/category"
	categoryPostgres "github.com/frahmantamala/retail-management/internal/category/postgres"
	"github.com/frahmantamala/retail-management/internal/company"
	companyPostgres "github.com/frahmantamala/retail-management/internal/company/postgres"
	"github.com/frahmantamala/retail-management/internal/product"
	productPostgres "github.com/frahmantamala/retail-management/internal/product/postgres"
	"github.com/frahmantamala/retail-management/internal/sale"
	salePostgres "github.com/frahmantamala/retail-management/internal/sale/postgres"
	"github.com/frahmantamala/retail-management/internal/transport"
	"github.com/frahmantamala/retail-management/internal/transport/rest"
	"github.com/frahmantamala/retail-management/internal/user"
	"github.com/frahmantamala/retail-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	lg := deps.Logger

	tokenGen := auth.NewJWTTokenGenerator(deps.Config.Security.JWTSecret, deps.Config.Security.SessionTokenTTL)

	userRepo := authPostgres.NewUserRepository(deps.GormDB)
	authService := auth.NewService(userRepo, tokenGen, deps.Config.Security.MinPasswordChars, lg)
	authHandler := auth.NewHandler(authService)

	baseHandler := transport.NewBaseHandler(lg)

	companyRepo := companyPostgres.NewCompanyRepository(deps.GormDB)
	companyService := company.NewService(companyRepo, lg)
	companyHandler := company.NewHandler(baseHandler, companyService)

	categoryRepo := categoryPostgres.NewCategoryRepository(deps.GormDB)
	categoryService := category.NewService(categoryRepo, lg)
	categoryHandler := category.NewHandler(baseHandler, categoryService)

	productRepo := productPostgres.NewProductRepository(deps.GormDB)
	productService := product.NewService(productRepo, lg)
	productHandler := product.NewHandler(baseHandler, productService)

	saleRepo := salePostgres.NewSaleRepository(deps.GormDB)
	saleService := sale.NewService(saleRepo, lg)
	saleHandler := sale.NewHandler(baseHandler, saleService)

	userHandler := user.NewHandler(baseHandler, authService)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.Config.Server.AllowedOrigins,
		authHandler,
		userHandler,
		companyHandler,
		categoryHandler,
		productHandler,
		saleHandler,
		companyService,
		lg,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the pooled database connection shared by all requests.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
