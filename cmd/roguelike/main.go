// Package main is the entry point for go-roguelike.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Elean1402/go-roguelike/internal/game"
	"github.com/Elean1402/go-roguelike/internal/telemetry"
)

func main() {
	// Load .env for local development. Not fatal: env vars may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(game.ConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv derives the standard OTEL_* variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_ROGUELIKE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ROGUELIKE_DATASET")
	if dataset == "" {
		dataset = "go-roguelike"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
