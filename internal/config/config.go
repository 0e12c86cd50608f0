package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment. A .env
// file is loaded by main before parsing.
type Config struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	PublicURL     string        `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	PhaseDuration time.Duration `env:"PHASE_DURATION" envDefault:"60s"`
	RoomTTL       time.Duration `env:"ROOM_TTL" envDefault:"2h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"10m"`
	Debug         bool          `env:"DEBUG"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
