// Package config loads server settings from the environment, an optional
// .env file and an optional YAML file.
//
// Precedence, lowest to highest: built-in defaults, the YAML file named by
// MAZE_MCP_CONFIG, then environment variables (including those set from .env).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/maze-tools-mcp/internal/imaging"
)

// Environment variables read by Load.
const (
	EnvLogLevel     = "MAZE_MCP_LOG_LEVEL"
	EnvConfigFile   = "MAZE_MCP_CONFIG"
	EnvGradient     = "MAZE_MCP_GRADIENT"
	EnvPreviewScale = "MAZE_MCP_PREVIEW_SCALE"
)

// Log levels.
const (
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// MaxPreviewScale bounds the preview upscale factor.
const MaxPreviewScale = 32

// Config holds all server configuration
type Config struct {
	LogLevel        string           `yaml:"log_level"`
	DefaultGradient string           `yaml:"default_gradient"`
	PreviewScale    int              `yaml:"preview_scale"` // nearest-neighbour upscale for returned PNGs
	Gradients       []GradientConfig `yaml:"gradients"`
}

// GradientConfig declares a custom gradient preset.
type GradientConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // linear, alternating or lab
	From string `yaml:"from"` // "#RRGGBB" or a color name
	To   string `yaml:"to"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:        LevelInfo,
		DefaultGradient: imaging.DefaultGradient,
		PreviewScale:    1,
	}
}

// Load builds the configuration from ./.env, MAZE_MCP_CONFIG and the
// environment. A missing .env file is not an error.
func Load() (*Config, error) {
	return load(".env")
}

func load(dotenv string) (*Config, error) {
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotenv, err)
	}

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads a YAML configuration file on top of the defaults. The
// environment is not consulted.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvGradient); ok && v != "" {
		c.DefaultGradient = v
	}
	if v, ok := os.LookupEnv(EnvPreviewScale); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvPreviewScale, err)
		}
		c.PreviewScale = n
	}
	return nil
}

// Validate checks every field and that the default gradient exists.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case LevelInfo, LevelDebug:
	case "":
		c.LogLevel = LevelInfo
	default:
		return fmt.Errorf("unknown log level: %s", c.LogLevel)
	}

	if c.PreviewScale < 1 || c.PreviewScale > MaxPreviewScale {
		return fmt.Errorf("preview scale must be between 1 and %d, got %d", MaxPreviewScale, c.PreviewScale)
	}

	presets, err := c.Presets()
	if err != nil {
		return err
	}
	if _, ok := presets[c.DefaultGradient]; !ok {
		return fmt.Errorf("default gradient %q is not defined", c.DefaultGradient)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == LevelDebug
}

// Presets returns the built-in gradient presets plus the custom ones from the
// configuration. Custom presets replace built-ins with the same name.
func (c *Config) Presets() (imaging.Presets, error) {
	presets := imaging.BuiltinPresets()
	for _, gc := range c.Gradients {
		from, err := imaging.ParseHexColor(gc.From)
		if err != nil {
			return nil, fmt.Errorf("gradient %q: from: %w", gc.Name, err)
		}
		to, err := imaging.ParseHexColor(gc.To)
		if err != nil {
			return nil, fmt.Errorf("gradient %q: to: %w", gc.Name, err)
		}
		spec := imaging.GradientSpec{Name: gc.Name, Kind: gc.Kind, From: from, To: to}
		if err := presets.Add(spec); err != nil {
			return nil, err
		}
	}
	return presets, nil
}
