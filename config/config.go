// Package config holds the settings of an experiment run. Values come from
// Default, then an optional YAML file, then HEARTH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"hearth/card"
)

const (
	PolicyRandom  = "random"
	PolicyGreedy  = "greedy"
	PolicySoftmax = "softmax"

	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

type PlayerConfig struct {
	Name        string  `yaml:"name"        env:"NAME"`
	Policy      string  `yaml:"policy"      env:"POLICY"`
	Temperature float64 `yaml:"temperature" env:"TEMPERATURE"`
	Decay       float64 `yaml:"decay"       env:"DECAY"`
	Deck        string  `yaml:"deck"        env:"DECK"`
}

type Config struct {
	Matches       int    `yaml:"matches"         env:"HEARTH_MATCHES"`
	WinRateWindow int    `yaml:"win_rate_window" env:"HEARTH_WIN_RATE_WINDOW"`
	StartHealth   int    `yaml:"start_health"    env:"HEARTH_START_HEALTH"`
	Seed          uint64 `yaml:"seed"            env:"HEARTH_SEED"`
	MaxDepth      int    `yaml:"max_depth"       env:"HEARTH_MAX_DEPTH"`
	MaxSequences  int    `yaml:"max_sequences"   env:"HEARTH_MAX_SEQUENCES"`
	Dedupe        bool   `yaml:"dedupe"          env:"HEARTH_DEDUPE"`
	LogLevel      string `yaml:"log_level"       env:"HEARTH_LOG_LEVEL"`
	RecordsDir    string `yaml:"records_dir"     env:"HEARTH_RECORDS_DIR"`
	RecordFormat  string `yaml:"record_format"   env:"HEARTH_RECORD_FORMAT"`
	// LibraryPath is an optional YAML file of extra card definitions.
	LibraryPath string       `yaml:"library_path" env:"HEARTH_LIBRARY_PATH"`
	Player1     PlayerConfig `yaml:"player1"      envPrefix:"HEARTH_PLAYER1_"`
	Player2     PlayerConfig `yaml:"player2"      envPrefix:"HEARTH_PLAYER2_"`
}

// Default mirrors the classic setup: a random player1 against a greedy
// player2, both with the fireball test deck.
func Default() Config {
	return Config{
		Matches:       3000,
		WinRateWindow: 1000,
		StartHealth:   14,
		Seed:          2214,
		MaxDepth:      8,
		MaxSequences:  2000,
		Dedupe:        true,
		LogLevel:      "warn",
		RecordsDir:    "experiments/records",
		RecordFormat:  FormatCSV,
		Player1:       PlayerConfig{Name: "player1", Policy: PolicyRandom, Temperature: 1, Decay: 1, Deck: "fireball"},
		Player2:       PlayerConfig{Name: "player2", Policy: PolicyGreedy, Temperature: 1, Decay: 1, Deck: "fireball"},
	}
}

// Load builds a Config from the defaults, the YAML file at path if path is
// not empty, and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Matches <= 0 {
		errs = append(errs, fmt.Errorf("matches must be positive, got %d", c.Matches))
	}
	if c.WinRateWindow <= 0 {
		errs = append(errs, fmt.Errorf("win rate window must be positive, got %d", c.WinRateWindow))
	}
	if c.StartHealth <= 0 {
		errs = append(errs, fmt.Errorf("start health must be positive, got %d", c.StartHealth))
	}
	if c.MaxDepth <= 0 || c.MaxSequences <= 0 {
		errs = append(errs, fmt.Errorf("search bounds must be positive, got depth %d and %d sequences", c.MaxDepth, c.MaxSequences))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.RecordFormat != FormatCSV && c.RecordFormat != FormatParquet {
		errs = append(errs, fmt.Errorf("unknown record format %q", c.RecordFormat))
	}
	for seat, p := range map[string]PlayerConfig{"player1": c.Player1, "player2": c.Player2} {
		if err := p.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", seat, err))
		}
	}
	return errors.Join(errs...)
}

func (p PlayerConfig) validate() error {
	switch p.Policy {
	case PolicyRandom, PolicyGreedy:
	case PolicySoftmax:
		if p.Temperature <= 0 {
			return fmt.Errorf("softmax temperature must be positive, got %v", p.Temperature)
		}
	default:
		return fmt.Errorf("unknown policy %q", p.Policy)
	}
	if _, ok := card.DeckList(p.Deck); !ok {
		return fmt.Errorf("unknown deck %q", p.Deck)
	}
	return nil
}
