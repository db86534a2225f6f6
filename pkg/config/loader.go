package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load reads configuration from .env, a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by LYRICVOCAB_CONFIG (fallback
// "./lyricvocab.yaml"). If the file does not exist and LYRICVOCAB_CONFIG was
// not set explicitly, configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	var cfg Config

	path := os.Getenv("LYRICVOCAB_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = "./lyricvocab.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
