package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/api"
	"fintrack/internal/api/handlers"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/mongodb"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting fintrack service")

	// Initialize database. A connection failure at startup is fatal.
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongodb.Connect(connectCtx, &cfg.Database, appLogger)
	cancel()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			appLogger.Error("Database disconnect error", zap.Error(err))
		}
	}()

	db := client.Database(cfg.Database.Name)

	// Initialize repository
	txRepo := repository.NewTransactionRepository(db, appLogger)

	// Initialize services
	txService := service.NewTransactionService(txRepo, appLogger)
	reportService := service.NewReportService(txRepo, appLogger)

	// Initialize handlers
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	reportHandler := handlers.NewReportHandler(reportService, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, txHandler, reportHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
