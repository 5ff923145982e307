package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	gameUseCase "github.com/tonarcade/casino-backend/internal/domain/usecase/game"
	paymentUseCase "github.com/tonarcade/casino-backend/internal/domain/usecase/payment"
	prizeUseCase "github.com/tonarcade/casino-backend/internal/domain/usecase/prize"
	userUseCase "github.com/tonarcade/casino-backend/internal/domain/usecase/user"

	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/api/handler"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/api/routes"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/chain/toncenter"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/lock"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/logger"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/repository"
	fileStore "github.com/tonarcade/casino-backend/internal/infrastructure/adapter/store/file"
	postgresStore "github.com/tonarcade/casino-backend/internal/infrastructure/adapter/store/postgres"
	redisStore "github.com/tonarcade/casino-backend/internal/infrastructure/adapter/store/redis"
	timeProvider "github.com/tonarcade/casino-backend/internal/infrastructure/adapter/time"
	"github.com/tonarcade/casino-backend/internal/infrastructure/config"

	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Select and open the document store backing
	backing, closer, err := buildDocumentStore(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize document store", map[string]any{
			"backend": cfg.Store.Backend,
			"error":   err.Error(),
		})
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	store := repository.NewSnapshotStore(backing, appLogger, cfg.Store.Strict)
	if err := store.Seed(context.Background()); err != nil {
		appLogger.Error("Failed to seed collection documents", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	locker := lock.NewKeyedMutex()

	// Chain verifier
	verifier := toncenter.NewVerifier(
		cfg.Chain.Endpoints,
		cfg.Chain.Recipient,
		cfg.Chain.APIKey,
		cfg.Chain.RequestTimeout,
		tp,
		appLogger,
	)

	// Initialize use cases
	accounts := userUseCase.NewAccountUseCase(store, locker, tp, appLogger)
	payments := paymentUseCase.NewPaymentUseCase(store, locker, accounts, verifier, tp, appLogger)
	crash := gameUseCase.NewCrashUseCase(store, locker, tp, appLogger)
	dice := gameUseCase.NewDiceUseCase(store, locker, tp, appLogger)
	prizes := prizeUseCase.NewPrizeUseCase(store, locker, tp, appLogger)

	// Initialize API handlers
	handlers := routes.Handlers{
		User:    handler.NewUserHandler(accounts, appLogger),
		Prize:   handler.NewPrizeHandler(prizes, appLogger),
		Crash:   handler.NewCrashHandler(crash, appLogger),
		Dice:    handler.NewDiceHandler(dice, appLogger),
		Payment: handler.NewPaymentHandler(payments, appLogger),
		Health:  handler.NewHealthHandler(tp),
		SDK:     handler.NewSDKHandler(tp, appLogger),
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, handlers)

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
			"port":    cfg.Server.Port,
			"env":     cfg.Environment,
			"backend": cfg.Store.Backend,
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

// buildDocumentStore opens the backing selected by store.backend. The
// returned closer is nil for the file backing, which holds no connections.
func buildDocumentStore(cfg *config.Config, appLogger coreport.Logger) (persistence.DocumentStore, io.Closer, error) {
	ctx := context.Background()

	switch cfg.Store.Backend {
	case "file", "":
		store, err := fileStore.NewStore(cfg.Store.Dir)
		return store, nil, err
	case "redis":
		store, err := redisStore.NewStore(ctx, cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case "postgres":
		store, err := postgresStore.NewStore(ctx, cfg.Store.PostgresDSN, cfg.Store.MaxOpenConns, cfg.Store.MaxIdleConns)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Store.Backend {
	case "file", "":
		if cfg.Store.Dir == "" {
			missingConfigs = append(missingConfigs, "store.dir")
		}
	case "redis":
		if cfg.Store.RedisAddr == "" {
			missingConfigs = append(missingConfigs, "store.redisAddr (or TA_REDIS_ADDR environment variable)")
		}
	case "postgres":
		if cfg.Store.PostgresDSN == "" {
			missingConfigs = append(missingConfigs, "store.postgresDsn (or TA_POSTGRES_DSN environment variable)")
		}
	default:
		return fmt.Errorf("invalid store backend: %s, must be one of: file, redis, postgres", cfg.Store.Backend)
	}

	// Payments cannot be verified without a recipient wallet
	if cfg.Chain.Recipient == "" {
		if cfg.Environment == config.Production {
			missingConfigs = append(missingConfigs, "chain.recipient (or TA_CHAIN_RECIPIENT environment variable)")
		} else {
			log.Println("Warning: chain.recipient is not set; on-chain payment verification will reject all claims")
		}
	}
	if len(cfg.Chain.Endpoints) == 0 {
		missingConfigs = append(missingConfigs, "chain.endpoints")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
