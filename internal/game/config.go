package game

import (
	"fmt"
	"strconv"
	"time"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed      = "BLOCKFALL_SEED"
	EnvTickMS    = "BLOCKFALL_TICK_MS"
	EnvTelemetry = "BLOCKFALL_TELEMETRY"
	EnvDebug     = "BLOCKFALL_DEBUG"
)

// Config holds game configuration options.
type Config struct {
	// Seed for the piece randomizer. Used for reproducible piece sequences.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// TickInterval is how often the active piece falls on its own.
	TickInterval time.Duration

	// Telemetry enables the OTLP trace exporter.
	Telemetry bool

	// Debug writes the process log to a file instead of discarding it.
	Debug bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Seed:         0,
		TickInterval: 500 * time.Millisecond,
	}
}

// LoadConfig builds a Config from DefaultConfig and the environment.
// lookup is usually os.LookupEnv.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookup(EnvTickMS); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvTickMS, err)
		}
		if ms <= 0 {
			return cfg, fmt.Errorf("parse %s: interval must be positive, got %d", EnvTickMS, ms)
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
	}

	var err error
	if cfg.Telemetry, err = parseBool(lookup, EnvTelemetry); err != nil {
		return cfg, err
	}
	if cfg.Debug, err = parseBool(lookup, EnvDebug); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseBool reads an optional boolean variable; unset means false.
func parseBool(lookup func(string) (string, bool), name string) (bool, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", name, err)
	}
	return b, nil
}
