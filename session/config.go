package session

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls the timing of a session. Gravity is the fall speed in rows per second. A zero
// Seed picks a random bag seed.
type Config struct {
	Gravity      float64       `env:"TETRION_GRAVITY"       envDefault:"1"`
	LockDelay    time.Duration `env:"TETRION_LOCK_DELAY"    envDefault:"500ms"`
	SpawnDelay   time.Duration `env:"TETRION_SPAWN_DELAY"   envDefault:"100ms"`
	Seed         uint64        `env:"TETRION_SEED"`
	HistoryLimit int           `env:"TETRION_HISTORY_LIMIT" envDefault:"1024"`
}

// DefaultConfig returns the configuration used when the environment sets nothing
func DefaultConfig() Config {
	return Config{
		Gravity:      1,
		LockDelay:    500 * time.Millisecond,
		SpawnDelay:   100 * time.Millisecond,
		HistoryLimit: 1024,
	}
}

// ParseConfig loads configuration from environment variables
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFromEnv returns configuration from the environment, falling back to defaults when
// it cannot be parsed
func LoadConfigFromEnv() Config {
	cfg, err := ParseConfig()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Validate reports the first setting that is out of range
func (c Config) Validate() error {
	switch {
	case c.Gravity < 0:
		return fmt.Errorf("gravity must not be negative, got %v", c.Gravity)
	case c.LockDelay < 0:
		return fmt.Errorf("lock delay must not be negative, got %s", c.LockDelay)
	case c.SpawnDelay < 0:
		return fmt.Errorf("spawn delay must not be negative, got %s", c.SpawnDelay)
	case c.HistoryLimit < 1:
		return fmt.Errorf("history limit must be at least 1, got %d", c.HistoryLimit)
	}
	return nil
}
