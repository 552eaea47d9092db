package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options, loaded from PROMPTCALC_* environment
// variables. Flags override after loading.
type Config struct {
	// Home is the profile directory holding the key file, the credential
	// file and the history database. Defaults to ~/.promptcalc.
	Home string `env:"HOME"`

	// BaseURL of the generative-language API.
	BaseURL string `env:"BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`

	// Model addressed by the generateContent call.
	Model string `env:"MODEL" envDefault:"gemini-pro"`

	// HTTPTimeout bounds each remote call; there is no retry.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// LoadConfig reads the environment and fills in the home default.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "PROMPTCALC_"}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".promptcalc")
	}
	return cfg, nil
}
