package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Players  Players `yaml:"players"`
	Console  Console `yaml:"console"`
}

type Players struct {
	First  string `yaml:"first" env:"TICTACTOE_PLAYER_FIRST" env-default:"Player 1"`
	Second string `yaml:"second" env:"TICTACTOE_PLAYER_SECOND" env-default:"Player 2"`
}

type Console struct {
	Prompt string `yaml:"prompt" env:"TICTACTOE_CONSOLE_PROMPT" env-default:"> "`
	// ManualStart waits for a "new" command instead of seating the configured players.
	ManualStart bool `yaml:"manual-start" env:"TICTACTOE_CONSOLE_MANUAL_START"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path when it exists, otherwise only the environment and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("could not read config %s: %w", path, err)
			}

			return config, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("could not stat config %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return config, nil
}
