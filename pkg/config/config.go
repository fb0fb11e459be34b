package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the Generator struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Generator holds the process-wide generation defaults.
type Generator struct {
	// Seed is the RNG seed. Zero means derive one from the wall clock.
	Seed int64 `env:"FAKEKIT_SEED" envDefault:"0"`

	// Theme is the default corpus for text generation.
	Theme string `env:"FAKEKIT_THEME" envDefault:"lorem"`
}

var defaultEnvLoaded sync.Once

// Load reads the default .env file (once per process, missing file is fine)
// and parses the environment into a Generator.
func Load() (Generator, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Generator
	if err := env.Parse(&cfg); err != nil {
		return Generator{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad() Generator {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load generation config: %v", err))
	}
	return cfg
}
