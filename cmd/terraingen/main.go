// Package main is the entry point for the acidrun terrain generator.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/go-logr/logr"
	"github.com/joho/godotenv"

	"github.com/samdwyer/acidrun/internal/config"
	"github.com/samdwyer/acidrun/internal/difficulty"
	"github.com/samdwyer/acidrun/internal/game"
	"github.com/samdwyer/acidrun/internal/preview"
	"github.com/samdwyer/acidrun/internal/telemetry"
)

// shutdownTimeout bounds the final telemetry flush.
const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(execute())
}

// execute runs the generator and returns the process exit code. Deferred
// telemetry shutdown runs before main exits.
func execute() int {
	// Load .env file for local development
	// This makes HONEYCOMB_ACIDRUN_API_KEY and ACIDRUN_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 2
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := telemetry.NewLogger(os.Stderr, cfg.Verbosity)

	if telemetry.Configured() {
		shutdown, err := telemetry.Setup(ctx, logger)
		if err != nil {
			logger.Error(err, "telemetry setup failed, continuing without observability")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Error(err, "telemetry shutdown failed")
				}
			}()
		}
	} else {
		logger.V(1).Info("no OTLP endpoint configured, telemetry disabled")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(err, "terraingen failed")
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config.Config, logger logr.Logger) error {
	table, err := loadTable(cfg.LevelsPath)
	if err != nil {
		return err
	}

	seed := cfg.ResolvedSeed()
	rng := rand.New(rand.NewSource(seed))

	level, err := game.StartLevel(ctx, table, difficulty.Difficulty(cfg.Difficulty), rng, logger)
	if err != nil {
		return err
	}
	logger.Info("level ready",
		"id", level.ID,
		"seed", seed,
		"difficulty", int(level.Difficulty),
		"height", level.Board.Height,
		"width", level.Board.Width,
		"oxygen", len(level.Board.Pickups()),
	)

	tiles := level.Board.Tiles()
	if !cfg.View {
		fmt.Printf("seed %d  difficulty %d  %dx%d  checksum %016x\n",
			seed, level.Difficulty, level.Board.Height, level.Board.Width, level.Checksum)
		return preview.Fprint(os.Stdout, tiles)
	}

	screen, err := preview.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	defer screen.Close()

	palette, err := preview.NewPalette(preview.DefaultColors)
	if err != nil {
		return err
	}
	return preview.NewViewer(screen, tiles, palette).Run(ctx)
}

func loadTable(path string) (*difficulty.Table, error) {
	if path == "" {
		return difficulty.LoadTable()
	}
	return difficulty.LoadTableFile(path)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ACIDRUN_API_KEY")
	if apiKey == "" {
		return
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	dataset := os.Getenv("HONEYCOMB_ACIDRUN_DATASET")
	if dataset == "" {
		dataset = "acidrun" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
