package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/homeconnect/backend/internal/pkg/config"
	"github.com/homeconnect/backend/internal/pkg/database"
	"github.com/homeconnect/backend/internal/pkg/health"
	httppkg "github.com/homeconnect/backend/internal/pkg/http"
	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/middleware"
	nsqpkg "github.com/homeconnect/backend/internal/pkg/nsq"
	"github.com/homeconnect/backend/internal/pkg/server"
	"github.com/homeconnect/backend/services/payments/gateway"
	"github.com/homeconnect/backend/services/payments/handler"
	"github.com/homeconnect/backend/services/payments/repository"
	"github.com/homeconnect/backend/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/payments.env"
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

	// Initialize NSQ producer for payment lifecycle events
	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}
	defer producer.Stop()

	// Initialize repository
	paymentRepo := repository.NewPaymentRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	mpesaClient := httppkg.NewEnhancedClient("mpesa", zapLogger, time.Duration(configs.Mpesa.TimeoutSeconds)*time.Second)
	paymentGW := gateway.NewPaymentGW(configs, mpesaClient, producer, zapLogger)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, paymentGW, zapLogger)

	// Initialize handler
	paymentHandler := handler.NewPaymentHandler(configs, paymentUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	paymentHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", zap.Error(err))
	}
}
