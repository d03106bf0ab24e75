package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envLookup returns a lookup function backed by a map.
func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(envLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(envLookup(map[string]string{
		EnvSeed:      "12345",
		EnvTickMS:    "250",
		EnvTelemetry: "true",
		EnvDebug:     "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(12345), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.True(t, cfg.Telemetry)
	assert.True(t, cfg.Debug)
}

func TestLoadConfigEmptyValuesKeepDefaults(t *testing.T) {
	cfg, err := LoadConfig(envLookup(map[string]string{
		EnvSeed:   "",
		EnvTickMS: "",
	}))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"seed", map[string]string{EnvSeed: "abc"}},
		{"tick not a number", map[string]string{EnvTickMS: "fast"}},
		{"tick zero", map[string]string{EnvTickMS: "0"}},
		{"tick negative", map[string]string{EnvTickMS: "-10"}},
		{"telemetry", map[string]string{EnvTelemetry: "maybe"}},
		{"debug", map[string]string{EnvDebug: "sure"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(envLookup(tt.env))
			assert.Error(t, err)
		})
	}
}
