package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Aidin1998/creatorhub/internal/assets"
	"github.com/Aidin1998/creatorhub/internal/creators"
	"github.com/Aidin1998/creatorhub/internal/database"
	"github.com/Aidin1998/creatorhub/internal/infrastructure/config"
	"github.com/Aidin1998/creatorhub/internal/server"
	"github.com/Aidin1998/creatorhub/internal/telemetry"
	"github.com/Aidin1998/creatorhub/pkg/logger"
	"github.com/Aidin1998/creatorhub/pkg/validation"
)

func main() {
	configPath := flag.String("config", os.Getenv("CREATORHUB_CONFIG"), "path to the YAML config file")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: cfg.Tracing.ServiceName,
		Tracing:     cfg.Tracing.Enabled,
		Metrics:     cfg.Tracing.Enabled && cfg.Tracing.ExportMetrics,
	})
	if err != nil {
		zapLogger.Fatal("Failed to set up telemetry", zap.Error(err))
	}

	db, err := database.Open(cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer database.Close(db)

	if cfg.Metrics.Enabled {
		go database.CollectPoolStats(ctx, db, cfg.Database.Driver, cfg.Database.StatsInterval, zapLogger)
	}

	validator := validation.NewValidator(zapLogger)
	creatorsSvc := creators.NewService(zapLogger, db)
	assetsSvc := assets.NewService(zapLogger, db, validator)

	gin.SetMode(gin.ReleaseMode)
	apiServer := server.NewServer(
		zapLogger,
		cfg,
		validator,
		func(ctx context.Context) error { return database.Ping(ctx, db) },
		creatorsSvc,
		assetsSvc,
	)

	httpCfg := cfg.Server.HTTP
	srv := &http.Server{
		Addr:         httpCfg.Addr(),
		Handler:      apiServer.Router(),
		ReadTimeout:  httpCfg.ReadTimeout,
		WriteTimeout: httpCfg.WriteTimeout,
		IdleTimeout:  httpCfg.IdleTimeout,
	}

	go func() {
		zapLogger.Info("Starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		zapLogger.Error("Failed to flush telemetry", zap.Error(err))
	}

	zapLogger.Info("Server exited properly")
}
