package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
// The onboarding messages file is loaded afterwards from Onboarding.MessagesPath.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
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

	msgs, err := LoadMessages(cfg.Onboarding.MessagesPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Messages = *msgs

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadMessages reads the onboarding messages file. The format (JSON or YAML)
// is picked from the file extension.
func LoadMessages(path string) (*Messages, error) {
	var msgs Messages
	if err := cleanenv.ReadConfig(path, &msgs); err != nil {
		return nil, fmt.Errorf("read messages %s: %w", path, err)
	}
	return &msgs, nil
}
