package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	LogFile   string `yaml:"log-file" env:"OTHELLO_LOG_FILE" env-default:"othello.log"`
	BoardSize int    `yaml:"board-size" env:"OTHELLO_BOARD_SIZE" env-default:"8"`
}

// MustLoad - load all configurations in config.yml file.
// A desktop game has to start with zero setup, so a missing file is fine:
// environment variables and defaults are used instead.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read environment: %w", err))
	}

	return config
}
