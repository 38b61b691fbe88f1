// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"evently-service/internal/app"
	"evently-service/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := app.NewServer(cfg, logger)
	if err := server.Start(ctx); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
