// Package config resolves command-line and environment settings.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Environment variables consulted before flags are parsed.
const (
	EnvSeed       = "ACIDRUN_SEED"
	EnvDifficulty = "ACIDRUN_DIFFICULTY"
	EnvLevels     = "ACIDRUN_LEVELS"
	EnvVerbosity  = "ACIDRUN_VERBOSITY"
)

// Config holds generator run options.
type Config struct {
	// Seed for random number generation. Used for reproducible maps.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Difficulty is the zero-based tier to build.
	Difficulty int
	// LevelsPath optionally points at a levels JSON file replacing the
	// embedded table.
	LevelsPath string
	// View opens the interactive terminal viewer instead of printing.
	View bool
	// Verbosity is the logr V-level threshold.
	Verbosity int
}

// Load builds a Config from environment defaults (looked up with getenv)
// overridden by command-line args.
func Load(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	var cfg Config
	var err error

	if cfg.Seed, err = envInt64(getenv, EnvSeed); err != nil {
		return Config{}, err
	}
	if cfg.Difficulty, err = envInt(getenv, EnvDifficulty); err != nil {
		return Config{}, err
	}
	if cfg.Verbosity, err = envInt(getenv, EnvVerbosity); err != nil {
		return Config{}, err
	}
	cfg.LevelsPath = getenv(EnvLevels)

	fs := flag.NewFlagSet("terraingen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "difficulty tier to generate")
	fs.StringVar(&cfg.LevelsPath, "levels", cfg.LevelsPath, "levels JSON file (defaults to the built-in table)")
	fs.BoolVar(&cfg.View, "view", false, "open the interactive viewer")
	fs.IntVar(&cfg.Verbosity, "v", cfg.Verbosity, "log verbosity")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Difficulty < 0 {
		return Config{}, fmt.Errorf("difficulty %d must not be negative", cfg.Difficulty)
	}
	return cfg, nil
}

// ResolvedSeed returns the configured seed, or a clock-derived one if unset.
func (c Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func envInt64(getenv func(string) string, key string) (int64, error) {
	v := getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

func envInt(getenv func(string) string, key string) (int, error) {
	n, err := envInt64(getenv, key)
	return int(n), err
}
