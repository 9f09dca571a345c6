package config

import (
	"fmt"
	"os"

	"domino/meta"

	"gopkg.in/yaml.v3"
)

// Config describes a self-play experiment.
type Config struct {
	Name      string        `yaml:"name"`
	Games     int           `yaml:"games"`
	Seed      uint64        `yaml:"seed"`
	Opponent  string        `yaml:"opponent"`   // first_match or random
	OutputDir string        `yaml:"output_dir"` // CSV output is skipped when empty
	Logging   LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

const (
	OpponentFirstMatch = "first_match"
	OpponentRandom     = "random"
)

func Default() Config {
	return Config{
		Name:     "self_play",
		Games:    100,
		Seed:     1,
		Opponent: OpponentFirstMatch,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Games <= 0 || c.Games > meta.MAX_GAMES {
		return fmt.Errorf("games must be within 1..%d, got %d", meta.MAX_GAMES, c.Games)
	}
	switch c.Opponent {
	case OpponentFirstMatch, OpponentRandom:
	default:
		return fmt.Errorf("unknown opponent %q", c.Opponent)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}
