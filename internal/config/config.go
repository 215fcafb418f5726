package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string  `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	LogFile   string  `yaml:"log-file" env:"LOG_FILE"`
	Console   Console `yaml:"console"`
}

type Console struct {
	HideGuide bool `yaml:"hide-guide" env:"CONSOLE_HIDE_GUIDE"`

	// MaxAttempts bounds bad inputs per move; zero retries forever.
	MaxAttempts int `yaml:"max-attempts" env:"CONSOLE_MAX_ATTEMPTS"`
}

// Load reads the config file when it exists; otherwise only environment and defaults apply.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
