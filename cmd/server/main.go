// Command server runs the sentence-builder HTTP API.
//
// Configuration comes from a YAML file (CONFIG_PATH or ./config.yaml)
// with environment variable overrides.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/hanbitlee/mykorean-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
