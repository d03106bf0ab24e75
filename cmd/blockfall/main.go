// Package main is the entry point for blockfall.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/samdwyer/blockfall/internal/game"
	"github.com/samdwyer/blockfall/internal/telemetry"
)

const (
	logDir      = "logs"
	logFileName = "blockfall.log"
)

// Replaced in tests.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig(os.LookupEnv)
	if err != nil {
		fatalf("Invalid configuration: %v", err)
	}

	// The terminal belongs to the game from here on
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			reportf("Warning: telemetry setup failed, running without observability: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		reportf("Game error: %v", err)
	}
}

// setupLogging sends the standard logger to logs/blockfall.log when debug is
// set and discards it otherwise, since the screen is owned by tcell.
// Returns the open log file, or nil when logging is disabled or fails.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// reportf writes a message to the log and, when the log goes elsewhere, to
// stderr so the player sees it once the terminal is released.
func reportf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Print(msg)
	if log.Writer() != stderr {
		fmt.Fprintln(stderr, msg)
	}
}

// fatalf reports a startup failure and exits with status 1.
func fatalf(format string, args ...any) {
	reportf(format, args...)
	exit(1)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_BLOCKFALL_API_KEY")
	dataset := os.Getenv("HONEYCOMB_BLOCKFALL_DATASET")
	if dataset == "" {
		dataset = "blockfall" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
