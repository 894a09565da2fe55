package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	NoColor  bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the config file at path. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := read(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load, but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func read(path string, config *Config) error {
	if path == "" {
		return cleanenv.ReadEnv(config)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cleanenv.ReadEnv(config)
	}

	return cleanenv.ReadConfig(path, config)
}
