package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/mazeband/internal/collision"
	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

// ErrInvalidConfig is returned when an environment variable cannot be parsed.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// DefaultTickRate is the simulation step, about 60 ticks per second.
	DefaultTickRate = 16 * time.Millisecond
	// DefaultKeyHold is how long a key press keeps its direction held.
	// Terminals report presses and auto-repeat but never releases.
	DefaultKeyHold = 180 * time.Millisecond
	// MaxTickDelta caps the elapsed time fed to a single tick.
	MaxTickDelta = 250 * time.Millisecond
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible maze generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Difficulty  string           // Difficulty ID preselected in the menu
	MaxCoins    int              // Coin cap handed to the generator
	Policy      collision.Policy // How competing wall corrections are chosen
	PlayerSpeed float64          // Body widths per second
	TickRate    time.Duration
	KeyHold     time.Duration
	LogFile     string

	Telemetry telemetry.Options
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Difficulty:  "easy",
		MaxCoins:    world.DefaultMaxCoins,
		Policy:      collision.PolicyLastWins,
		PlayerSpeed: entity.DefaultSpeed,
		TickRate:    DefaultTickRate,
		KeyHold:     DefaultKeyHold,
		LogFile:     "mazeband.log",
	}
}

// LoadConfig builds a Config from MAZEBAND_* environment variables on top of
// DefaultConfig. Call godotenv.Load first to pick up a .env file.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup("MAZEBAND_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: MAZEBAND_SEED: %v", ErrInvalidConfig, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("MAZEBAND_DIFFICULTY"); ok {
		cfg.Difficulty = v
	}
	if v, ok := lookup("MAZEBAND_MAX_COINS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: MAZEBAND_MAX_COINS: %v", ErrInvalidConfig, err)
		}
		cfg.MaxCoins = n
	}
	if v, ok := lookup("MAZEBAND_POLICY"); ok {
		policy, err := collision.ParsePolicy(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: MAZEBAND_POLICY: %v", ErrInvalidConfig, err)
		}
		cfg.Policy = policy
	}
	if v, ok := lookup("MAZEBAND_PLAYER_SPEED"); ok {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil || speed <= 0 {
			return cfg, fmt.Errorf("%w: MAZEBAND_PLAYER_SPEED must be a positive number, got %q", ErrInvalidConfig, v)
		}
		cfg.PlayerSpeed = speed
	}
	if v, ok := lookup("MAZEBAND_TICK_RATE"); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("%w: MAZEBAND_TICK_RATE must be a positive duration, got %q", ErrInvalidConfig, v)
		}
		cfg.TickRate = d
	}
	if v, ok := lookup("MAZEBAND_LOG_FILE"); ok {
		cfg.LogFile = v
	}

	cfg.Telemetry.APIKey, _ = lookup("HONEYCOMB_MAZEBAND_API_KEY")
	cfg.Telemetry.Dataset, _ = lookup("HONEYCOMB_MAZEBAND_DATASET")

	return cfg, nil
}
