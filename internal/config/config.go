package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"setgame/internal/util"
)

// Config provides configuration for the Set simulator
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
	Game struct {
		DeckSize  int   `yaml:"deckSize" envconfig:"deck_size"`
		BoardSize int   `yaml:"boardSize" envconfig:"board_size"`
		DealSize  int   `yaml:"dealSize" envconfig:"deal_size"`
		Seed      int64 `yaml:"seed"`
	}
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides are present
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Game.DeckSize = 81
	cfg.Game.BoardSize = 12
	cfg.Game.DealSize = 3

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SETGAME_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("setgame", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
