package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taxiadmin/internal/admin"
	"taxiadmin/internal/app"
	"taxiadmin/internal/config"
	"taxiadmin/internal/flash"
	"taxiadmin/internal/gateway"
	"taxiadmin/internal/repository/remote"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// A missing admin token is the one fatal configuration error: nothing
	// the panel serves works without it.
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so Redis and the gateway get instrumented.
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.Warn("failed to initialize New Relic", zap.Error(err))
		} else {
			logger.Info("New Relic enabled", zap.String("app", cfg.NewRelic.AppName))
		}
	}

	// Redis backs only the flash-message store; entity data is never cached.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	logger.Info("Connected to Redis")

	// Wire dependencies.
	server, err := wireServer(redisClient, nrApp, cfg, logger)
	if err != nil {
		logger.Fatal("failed to wire server", zap.Error(err))
	}

	// Start server in goroutine.
	go func() {
		logger.Info("Starting admin panel", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, logger *zap.Logger) (*http.Server, error) {
	// One gateway client for the whole process, passed down explicitly.
	apiClient, err := gateway.New(gateway.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
	}, logger.Named("gateway"))
	if err != nil {
		return nil, err
	}

	// Initialize repositories over the remote API.
	userRepo := remote.NewUserRepository(apiClient)
	documentRepo := remote.NewDocumentRepository(apiClient)
	rideRepo := remote.NewRideRepository(apiClient)
	bookingRepo := remote.NewBookingRepository(apiClient)

	// Flash store for post-redirect messages.
	messages := flash.NewStore(redisClient, logger.Named("flash"))

	// The panel owns change lists, detail pages and actions.
	panel := admin.NewPanel(userRepo, documentRepo, rideRepo, bookingRepo, messages, logger.Named("admin"))

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		Panel:       panel,
		Logger:      logger.Named("http"),
		NewRelicApp: nrApp,
		Templates:   cfg.Server.Templates,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, nil
}
