package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	accountUseCase "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/account"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/balance"
	moneyRequestUseCase "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/moneyrequest"
	statsUseCase "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/stats"
	tokenUseCase "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/token"
	topUpUseCase "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/topup"

	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/handler"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/routes"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/auth"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/cache"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/database"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/database/migration"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/gateway/sslcommerz"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/logger"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/media"
	timeProvider "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/time"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(database.NewConfig(cfg))
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Security adapters
	hasher := auth.NewBcryptHasher()
	tokenIssuer := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)

	// Seed the initial admin account
	if err := migration.SeedAdmin(context.Background(), uow, hasher, tp, appLogger, cfg.Admin); err != nil {
		appLogger.Error("Failed to seed admin account", map[string]any{
			"error": err.Error(),
		})
	}

	// Optional Redis cache for admin stats. The system runs without it.
	var statsCache coreport.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Redis, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, stats caching disabled", map[string]any{
				"error": err.Error(),
			})
		} else {
			statsCache = redisCache
			defer func() { _ = redisCache.Close() }()
		}
	}

	// External gateways
	paymentGateway := sslcommerz.NewClient(sslcommerz.Config{
		StoreID:       cfg.Gateway.StoreID,
		StorePassword: cfg.Gateway.StorePassword,
		Sandbox:       cfg.Gateway.Sandbox,
	}, appLogger)
	mediaStorage := media.NewImgBBStorage(cfg.Media, appLogger)

	// Balance engine and use cases
	engine := balance.NewEngine(uow, tp, appLogger)

	accountUC := accountUseCase.NewAccountUseCase(uow, engine, hasher, tokenIssuer, tp, appLogger, cfg.Meal.StartingBalance)
	tokenUC := tokenUseCase.NewTokenUseCase(uow, engine, statsCache, tp, appLogger, cfg.Meal.UnitPrice)
	statsUC := statsUseCase.NewStatsUseCase(uow, statsCache, tp, appLogger)
	moneyRequestUC := moneyRequestUseCase.NewMoneyRequestUseCase(uow, engine, tp, appLogger)
	topUpUC := topUpUseCase.NewTopUpUseCase(uow, engine, paymentGateway, tp, appLogger, topUpUseCase.Config{
		MinAmount:       cfg.Meal.MinTopUp,
		CallbackBaseURL: cfg.Gateway.CallbackBaseURL,
	})

	// Initialize API handlers
	handlers := routes.Handlers{
		Auth:         handler.NewAuthHandler(accountUC, appLogger),
		Account:      handler.NewAccountHandler(accountUC, appLogger),
		Token:        handler.NewTokenHandler(tokenUC, appLogger),
		MoneyRequest: handler.NewMoneyRequestHandler(moneyRequestUC, appLogger),
		TopUp:        handler.NewTopUpHandler(topUpUC, cfg.Gateway.FrontendURL, appLogger),
		Admin:        handler.NewAdminHandler(statsUC, accountUC, appLogger),
		Upload:       handler.NewUploadHandler(mediaStorage, cfg.Media.MaxUploadBytes, appLogger),
	}

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)

	// Setup routes
	routes.SetupRoutes(router, handlers, tokenIssuer, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or HFT_DB_HOST environment variable)")
	}

	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or HFT_DB_NAME environment variable)")
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or HFT_JWT_SECRET environment variable)")
	}

	if cfg.Environment == config.Production {
		if cfg.Gateway.StoreID == "" || cfg.Gateway.StorePassword == "" {
			missingConfigs = append(missingConfigs, "gateway.storeId/storePassword (or HFT_GATEWAY_* environment variables)")
		}
		if cfg.Gateway.CallbackBaseURL == "" {
			missingConfigs = append(missingConfigs, "gateway.callbackBaseUrl")
		}
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	return nil
}
