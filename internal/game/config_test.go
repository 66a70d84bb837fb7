package game

import (
	"errors"
	"testing"
	"time"

	"github.com/samdwyer/mazeband/internal/collision"
	"github.com/samdwyer/mazeband/internal/world"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(lookupFrom(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.MaxCoins != world.DefaultMaxCoins || cfg.TickRate != DefaultTickRate {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.Telemetry.Enabled() {
		t.Error("Telemetry should be disabled without an API key")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(lookupFrom(map[string]string{
		"MAZEBAND_SEED":              "1234",
		"MAZEBAND_DIFFICULTY":        "hard",
		"MAZEBAND_MAX_COINS":         "-1",
		"MAZEBAND_POLICY":            "nearest",
		"MAZEBAND_PLAYER_SPEED":      "4.5",
		"MAZEBAND_TICK_RATE":         "10ms",
		"MAZEBAND_LOG_FILE":          "/tmp/maze.log",
		"HONEYCOMB_MAZEBAND_API_KEY": "key",
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Seed != 1234 || cfg.Difficulty != "hard" || cfg.MaxCoins != -1 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Policy != collision.PolicyNearest {
		t.Errorf("Expected nearest policy, got %v", cfg.Policy)
	}
	if cfg.PlayerSpeed != 4.5 || cfg.TickRate != 10*time.Millisecond {
		t.Errorf("Unexpected speed or tick rate: %+v", cfg)
	}
	if cfg.LogFile != "/tmp/maze.log" {
		t.Errorf("Unexpected log file %q", cfg.LogFile)
	}
	if !cfg.Telemetry.Enabled() {
		t.Error("Telemetry should be enabled with an API key")
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	bad := []map[string]string{
		{"MAZEBAND_SEED": "abc"},
		{"MAZEBAND_MAX_COINS": "many"},
		{"MAZEBAND_POLICY": "first"},
		{"MAZEBAND_PLAYER_SPEED": "0"},
		{"MAZEBAND_TICK_RATE": "-5ms"},
	}
	for _, env := range bad {
		if _, err := loadConfig(lookupFrom(env)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%v: expected ErrInvalidConfig, got %v", env, err)
		}
	}
}
