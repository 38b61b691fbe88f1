// cmd/client/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"evently-service/internal/client/cli"
	"evently-service/internal/client/config"

	_ "modernc.org/sqlite"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid arguments: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("failed to start client: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("client error: %v", err)
	}
}
