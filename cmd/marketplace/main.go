package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/homeconnect/backend/internal/pkg/config"
	"github.com/homeconnect/backend/internal/pkg/database"
	"github.com/homeconnect/backend/internal/pkg/health"
	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/middleware"
	"github.com/homeconnect/backend/internal/pkg/server"
	"github.com/homeconnect/backend/services/marketplace/handler"
	"github.com/homeconnect/backend/services/marketplace/repository"
	"github.com/homeconnect/backend/services/marketplace/usecase"
)

func main() {
	appName := "marketplace-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/marketplace.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repository
	marketplaceRepo := repository.NewMarketplaceRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize usecase
	marketplaceUC := usecase.NewMarketplaceUC(configs, marketplaceRepo, zapLogger)

	// Initialize handlers
	marketplaceHandler := handler.NewMarketplaceHandler(configs, marketplaceUC)

	// Consume payment lifecycle events into notifications
	paymentConsumer := handler.NewPaymentEventConsumer(configs, marketplaceUC)
	if err := paymentConsumer.Start(); err != nil {
		zapLogger.Fatal("Failed to start payment event consumers", zap.Error(err))
	}
	defer paymentConsumer.Stop()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	marketplaceHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", zap.Error(err))
	}
}
