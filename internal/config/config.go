// Package config loads the watersort YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Solver SolverConfig `yaml:"solver"`
	Levels LevelsConfig `yaml:"levels"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr" validate:"required"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" validate:"gt=0"`
	// MaxGames caps the in-memory game sessions.
	MaxGames int `yaml:"max_games" validate:"gte=1"`
	// SolveRate caps solve and hint requests per second; 0 is unlimited.
	SolveRate  float64 `yaml:"solve_rate" validate:"gte=0"`
	SolveBurst int     `yaml:"solve_burst" validate:"gte=0"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

type SolverConfig struct {
	// Depth is the default search depth limit.
	Depth   int           `yaml:"depth" validate:"gte=1,lte=500"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	// Verify makes the generator keep only layouts the solver can win.
	Verify bool `yaml:"verify"`
}

type LevelsConfig struct {
	// Dir overrides the embedded catalogue when set.
	Dir string `yaml:"dir"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080", ReadHeaderTimeout: 5 * time.Second, MaxGames: 1000},
		Log:    LogConfig{Level: "info"},
		Solver: SolverConfig{Depth: 20, Timeout: 10 * time.Second, Verify: false},
	}
}

var validate = validator.New()

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel maps the configured level name to slog.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the text logger used by every command.
func NewLogger(c LogConfig) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.SlogLevel()}))
}
