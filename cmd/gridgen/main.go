// Package main is the entry point for gridgen.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridgen/internal/game"
	"github.com/samdwyer/gridgen/internal/telemetry"
)

const honeycombEndpoint = "https://api.honeycomb.io"

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_GRIDGEN_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generator will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(loadConfig())
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	// Restore the terminal before any fatal log
	err = g.Run(ctx)
	g.Close()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// loadConfig reads game options from GRIDGEN_* environment variables.
func loadConfig() game.Config {
	cfg := game.Config{
		SettingsPath: os.Getenv("GRIDGEN_SETTINGS"),
	}
	if seed := os.Getenv("GRIDGEN_SEED"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			log.Printf("Ignoring invalid GRIDGEN_SEED %q: %v", seed, err)
		} else {
			cfg.Seed = n
		}
	}
	return cfg
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Default to Honeycomb unless an endpoint is already configured
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint)
	}

	apiKey := os.Getenv("HONEYCOMB_GRIDGEN_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GRIDGEN_DATASET")
	if dataset == "" {
		dataset = "gridgen" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
