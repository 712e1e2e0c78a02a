// Package config loads FoodHub settings from an optional YAML file,
// a .env file and FOODHUB_* environment variables (in increasing precedence).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	dirName        = ".foodhub"
	configFileName = "config.yaml"
)

// Config holds all storefront settings.
type Config struct {
	// Theme is one of classic, neon, mono.
	Theme string `yaml:"theme"`
	// Menu is an optional YAML/JSON menu file replacing the built-in catalog.
	Menu string `yaml:"menu"`
	// Currency is the symbol printed before prices.
	Currency string `yaml:"currency"`

	Order   OrderConfig   `yaml:"order"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// OrderConfig tunes the simulated delivery.
type OrderConfig struct {
	EstimatedTime string        `yaml:"estimated_time"`
	StepDelay     time.Duration `yaml:"step_delay"` // gap between status changes
}

type UIConfig struct {
	ToastDuration time.Duration `yaml:"toast_duration"`
	AltScreen     bool          `yaml:"alt_screen"`
}

// LoggingConfig controls zap output. An empty File disables logging in the TUI.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:    "classic",
		Currency: "$",
		Order: OrderConfig{
			EstimatedTime: "25-30 mins",
			StepDelay:     3 * time.Second,
		},
		UI: UIConfig{
			ToastDuration: 3 * time.Second,
			AltScreen:     true,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultPath is ~/.foodhub/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName, configFileName), nil
}

// Load reads path (or DefaultPath when empty) over Default, then applies env overrides.
// A missing file is not an error unless path was given explicitly. Validation
// failures wrap ErrInvalid and still return the resolved config, so callers can
// apply their own overrides and validate again.
func Load(path string) (Config, error) {
	cfg := Default()
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Theme = getEnv("FOODHUB_THEME", c.Theme)
	c.Menu = getEnv("FOODHUB_MENU", c.Menu)
	c.Currency = getEnv("FOODHUB_CURRENCY", c.Currency)
	c.Order.EstimatedTime = getEnv("FOODHUB_ESTIMATED_TIME", c.Order.EstimatedTime)
	c.Logging.File = getEnv("FOODHUB_LOG_FILE", c.Logging.File)
	c.Logging.Level = getEnv("FOODHUB_LOG_LEVEL", c.Logging.Level)

	if v := os.Getenv("FOODHUB_STEP_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FOODHUB_STEP_DELAY: %w", err)
		}
		c.Order.StepDelay = d
	}
	return nil
}

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects settings the storefront cannot run with.
func (c Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func (c Config) validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.Theme)
	}
	if c.Order.StepDelay <= 0 {
		return fmt.Errorf("order.step_delay must be positive, got %s", c.Order.StepDelay)
	}
	if c.UI.ToastDuration < 0 {
		return fmt.Errorf("ui.toast_duration must not be negative")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
