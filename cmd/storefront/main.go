package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"storefront/config"
	"storefront/internal/clients"
	"storefront/internal/delivery"
	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/state"
	"storefront/internal/usecase"
	"storefront/pkg/db"
)

func main() {
	logger := setupLogger("info")

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s' in config, using default 'info'. Error: %v", cfg.LogLevel, err)
	} else {
		logger.SetLevel(logLevel)
	}
	logger.Info("Starting Storefront...")

	stateStore, closeStore := openStateStore(cfg.DatabaseURL, logger)
	defer closeStore()

	sessions := state.NewSessionStore(stateStore, logger)
	cart := state.NewCartStore(stateStore, logger)
	mirror := state.NewProductMirror(stateStore, logger)

	gql := clients.NewGraphQLClient(cfg.GraphQLURL, cfg.RequestTimeout, sessions.AccessToken, logger)
	api := clients.NewStorefrontAPI(gql, logger)

	authUseCase := usecase.NewAuthUseCase(api, sessions, logger)
	catalogUseCase := usecase.NewCatalogUseCase(api, mirror, logger)
	cartUseCase := usecase.NewCartUseCase(cart, mirror, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(api, cart, sessions, logger)
	historyUseCase := usecase.NewOrderHistoryUseCase(api, sessions, logger)
	adminUseCase := usecase.NewAdminUseCase(api, logger)
	refresher := usecase.NewCatalogRefresher(catalogUseCase, cfg.CatalogRefreshInterval, cfg.RequestTimeout, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(middleware.RequestID(), middleware.RequestLogger(logger), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Location", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	delivery.NewAuthHandler(authUseCase, logger).RegisterRoutes(router)
	delivery.NewProductHandler(catalogUseCase, logger).RegisterRoutes(router)
	delivery.NewCartHandler(cartUseCase, logger).RegisterRoutes(router)
	delivery.NewOrderHandler(checkoutUseCase, historyUseCase, logger).
		RegisterRoutes(router, middleware.RequireSession(sessions, logger))
	delivery.NewAdminHandler(adminUseCase, catalogUseCase, logger).
		RegisterRoutes(router, middleware.RequireAdmin(sessions, logger))

	server := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("HTTP server stopped serving.")
		return nil
	})
	g.Go(func() error {
		return refresher.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Warn("Shutdown signal received...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("Storefront stopped with error: %v", err)
		closeStore()
		os.Exit(1)
	}
	logger.Info("Storefront shut down gracefully.")
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

// openStateStore prefers Postgres and falls back to memory when no database
// is configured or it cannot be reached.
func openStateStore(databaseURL string, logger *logrus.Logger) (domain.StateStore, func()) {
	if databaseURL == "" {
		logger.Warn("No DATABASE_URL, keeping client state in memory")
		return repository.NewMemoryStateRepository(), func() {}
	}

	logger.Info("Connecting to database...")
	conn, err := db.Connect(databaseURL, 5*time.Second)
	if err != nil {
		logger.Errorf("Failed to connect to database, keeping client state in memory: %v", err)
		return repository.NewMemoryStateRepository(), func() {}
	}
	if err := repository.Migrate(conn, logger); err != nil {
		logger.Errorf("Failed to migrate database, keeping client state in memory: %v", err)
		closeDB(conn, logger)
		return repository.NewMemoryStateRepository(), func() {}
	}
	logger.Info("Database connection established successfully.")

	closed := false
	return repository.NewPostgresStateRepository(conn, logger), func() {
		if closed {
			return
		}
		closed = true
		closeDB(conn, logger)
	}
}

func closeDB(conn *sql.DB, logger *logrus.Logger) {
	if err := conn.Close(); err != nil {
		logger.Errorf("Error closing database connection: %v", err)
	} else {
		logger.Info("Database connection closed.")
	}
}
