package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/term"
)

const (
	DefaultWidth       = 40
	DefaultHeight      = 80
	DefaultMargin      = 3
	DefaultInterval    = time.Second
	DefaultDensity     = life.DefaultDensity
	DefaultPattern     = "random"
	DefaultBackend     = BackendANSI
	DefaultGenerations = 500
)

const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

type Config struct {
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Margin      int           `yaml:"margin"`
	Interval    time.Duration `yaml:"interval"`
	Density     float64       `yaml:"density"`
	Seed        int64         `yaml:"seed"`
	Pattern     string        `yaml:"pattern"`
	Backend     string        `yaml:"backend"`
	Palette     term.Palette  `yaml:"palette"`
	Generations int           `yaml:"generations"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Margin:      DefaultMargin,
		Interval:    DefaultInterval,
		Density:     DefaultDensity,
		Pattern:     DefaultPattern,
		Backend:     DefaultBackend,
		Palette:     term.DefaultPalette(),
		Generations: DefaultGenerations,
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a yaml file over a copy of base. Keys absent from the file
// keep the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", c.Margin)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be within [0, 1], got %f", c.Density)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", c.Generations)
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q (available: %s, %s)", c.Backend, BackendANSI, BackendTcell)
	}
	if !term.ValidColor(c.Palette.Alive) {
		return fmt.Errorf("invalid alive color %q", c.Palette.Alive)
	}
	if !term.ValidColor(c.Palette.Background) {
		return fmt.Errorf("invalid background color %q", c.Palette.Background)
	}
	if _, err := life.Seed(c.Pattern, 1, 1, 0, nil); err != nil {
		return err
	}
	return nil
}
