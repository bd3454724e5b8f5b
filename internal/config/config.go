package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// MaxSide bounds WIDTH and HEIGHT. The debug picture is drawn at one pixel
// per unit, so the area must stay small enough to hold in memory.
const MaxSide = 8192

type Config struct {
	Width           int     `envconfig:"WIDTH" default:"400"`
	Height          int     `envconfig:"HEIGHT" default:"400"`
	Capacity        int     `envconfig:"CAPACITY" default:"2"`
	ResetCapacity   int     `envconfig:"RESET_CAPACITY" default:"5"`
	MaxDepth        int     `envconfig:"MAX_DEPTH" default:"32"`
	Points          int     `envconfig:"POINTS" default:"300"`
	Seed            int64   `envconfig:"SEED" default:"0"`
	Distribution    string  `envconfig:"DISTRIBUTION" default:"gaussian"`
	QueryHalfWidth  float64 `envconfig:"QUERY_HALF_WIDTH" default:"107"`
	QueryHalfHeight float64 `envconfig:"QUERY_HALF_HEIGHT" default:"75"`
	QueryRadius     float64 `envconfig:"QUERY_RADIUS" default:"90"`
	LogLevel        string  `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values a tree or a window cannot be built from.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid area %dx%d", c.Width, c.Height)
	}
	if c.Width > MaxSide || c.Height > MaxSide {
		return fmt.Errorf("area %dx%d exceeds %dx%d", c.Width, c.Height, MaxSide, MaxSide)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("invalid capacity %d", c.Capacity)
	}
	if c.ResetCapacity < 1 {
		return fmt.Errorf("invalid reset capacity %d", c.ResetCapacity)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max depth %d", c.MaxDepth)
	}
	if c.Points < 0 {
		return fmt.Errorf("invalid point count %d", c.Points)
	}
	if c.Distribution != "gaussian" && c.Distribution != "uniform" {
		return fmt.Errorf("unknown distribution %q", c.Distribution)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level is the parsed LogLevel. It is only valid after Validate succeeded.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
