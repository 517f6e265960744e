package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisabline/party_ledger_app/internal/adapters/database/pgsql"
	"github.com/hisabline/party_ledger_app/internal/adapters/remote"
	"github.com/hisabline/party_ledger_app/internal/core/services"
	"github.com/hisabline/party_ledger_app/internal/handlers"
	"github.com/hisabline/party_ledger_app/internal/middleware"
	"github.com/hisabline/party_ledger_app/internal/platform/config"
	"github.com/hisabline/party_ledger_app/internal/utils"
	"github.com/hisabline/party_ledger_app/pkg/database"

	portsrepo "github.com/hisabline/party_ledger_app/internal/core/ports/repositories"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Party Ledger API
// @version 1.0
// @description Backend for the party ledger bookkeeping application.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// User accounts always live in PostgreSQL, so the pool is needed even
	// when the party directory and ledger store are remote services.
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	runMigrations(cfg, logger)

	repos := buildRepositories(cfg, dbPool, logger)

	telemetry := utils.InitializeTelemetryClient(cfg.PosthogAPIKey, logger)
	defer telemetry.Close()

	container := services.NewServiceContainer(cfg, repos, telemetry)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.RegisterRoutes(r, cfg, container, telemetry)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories selects the backend for each collaborator. The party
// directory and ledger store switch to remote HTTP clients when their base
// URLs are configured; otherwise both are served from PostgreSQL.
func buildRepositories(cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) portsrepo.RepositoryProvider {
	repos := portsrepo.RepositoryProvider{
		UserRepo: pgsql.NewUserRepository(dbPool),
	}

	if cfg.PartyDirectoryURL != "" {
		logger.Info("Using remote party directory", slog.String("base_url", cfg.PartyDirectoryURL))
		repos.PartyDirectory = remote.NewPartyClient(cfg.PartyDirectoryURL, logger)
	} else {
		repos.PartyDirectory = pgsql.NewPgxPartyRepository(dbPool)
	}

	if cfg.LedgerServiceURL != "" {
		logger.Info("Using remote ledger service", slog.String("base_url", cfg.LedgerServiceURL))
		repos.LedgerStore = remote.NewLedgerClient(cfg.LedgerServiceURL, logger)
	} else {
		repos.LedgerStore = pgsql.NewPgxLedgerRepository(dbPool)
	}

	return repos
}

func runMigrations(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx/v5/stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		os.Exit(1)
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		os.Exit(1)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
}
