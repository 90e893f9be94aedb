package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"fieldservice/internal/adapter/http/routes"
	"fieldservice/internal/config"
	"fieldservice/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Field Service Estimates API
// @version         1.0
// @description     Multi-tenant estimates with priced options, customers, jobs and payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Tenant
// @in header
// @name x-tenant-id
// @description Tenant the request acts on.

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
