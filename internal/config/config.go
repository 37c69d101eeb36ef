package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const StartingPlayerRandom = "random"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel       string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFile        string `yaml:"log-file" env:"LOG_FILE"`
	StartingPlayer string `yaml:"starting-player" env:"STARTING_PLAYER" env-default:"random"`
	NoColor        bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path, overridden by environment variables. Without a file only the environment is used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log-level %q", ErrInvalidConfig, that.LogLevel)
	}

	switch strings.ToLower(that.StartingPlayer) {
	case "x", "o", StartingPlayerRandom:
	default:
		return fmt.Errorf("%w: unknown starting-player %q", ErrInvalidConfig, that.StartingPlayer)
	}

	return nil
}
