package main

import (
	"context"
	"log"
	"os"

	_ "brokerage_crm/docs"
	"brokerage_crm/internal/adapter/http/routes"
	"brokerage_crm/internal/app"
	"brokerage_crm/internal/config"
	"brokerage_crm/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Brokerage Quote Core API
// @version         1.0
// @description     Carrier quote submission, automation sessions and quote ingestion.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := run(cfg, zl, routes.Run); err != nil {
		zl.Error("failed to startup the application", zap.Error(err))
		_ = zl.Sync()
		os.Exit(1)
	}
	_ = zl.Sync()
}

// run owns the application lifetime so Close always runs before the process exits.
func run(cfg *config.Config, zl *zap.Logger, serve func(*app.App) error) error {
	a, err := app.New(context.Background(), cfg, zl)
	if err != nil {
		return err
	}
	defer a.Close()

	return serve(a)
}
