package main

import (
	"os"

	_ "plotbook/docs"
	"plotbook/internal/adapter/http/routes"
	"plotbook/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Plot Booking Service API
// @version         1.0
// @description     Plot bookings, payment schedules and collections backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown LOG_LEVEL %q, falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stdout)

	routes.Run(cfg, logger)
}
