package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gg-spine/skeleton"
)

// Config controls a demo run. Flags override file values.
type Config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Scale      float32 `yaml:"scale"`
	Frames     int     `yaml:"frames"`
	FPS        float64 `yaml:"fps"`
	Out        string  `yaml:"out"`
	FlipX      bool    `yaml:"flip_x"`
	FlipY      bool    `yaml:"flip_y"`
	Background string  `yaml:"background"`
	Speed      float64 `yaml:"speed"`
	LogLevel   string  `yaml:"log_level"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Width:      256,
		Height:     256,
		Scale:      4,
		Frames:     30,
		FPS:        30,
		Out:        "frames",
		Background: "#202030",
		Speed:      1,
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML config from path on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate reports settings the demo cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Errorf("invalid scale %v", c.Scale)
	case c.Frames < 0:
		return errors.Errorf("invalid frame count %d", c.Frames)
	case c.FPS <= 0:
		return errors.Errorf("invalid fps %v", c.FPS)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty value means info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return l, nil
}

// BackgroundColor parses Background, falling back to opaque white for
// malformed values.
func (c Config) BackgroundColor() skeleton.Color {
	return skeleton.Hex(c.Background)
}
