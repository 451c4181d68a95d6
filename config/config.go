// Package config loads the chargrid command line settings from JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"chargrid/canvas"
)

// DefaultPath is the config file looked up when no -config flag is given.
const DefaultPath = "chargrid.json"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Config holds the grid defaults used by the CLI.
type Config struct {
	Columns    int    `json:"columns"`
	Rows       int    `json:"rows"`
	Background string `json:"background"`
	LogLevel   string `json:"log_level"`
}

// Default returns the built-in configuration: an 80x25 grid of spaces.
func Default() *Config {
	return &Config{
		Columns:    canvas.DefaultColumns,
		Rows:       canvas.DefaultRows,
		Background: canvas.DefaultBackground,
		LogLevel:   "info",
	}
}

// Load reads a config file. A missing file yields the defaults, and
// fields omitted from the JSON keep their default values.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: columns=%d rows=%d", canvas.ErrInvalidDimension, c.Columns, c.Rows)
	}
	if err := canvas.CheckChar(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty value means info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewGrid creates a grid with the configured size and background.
func (c *Config) NewGrid() (*canvas.Grid, error) {
	return canvas.New(c.Columns, c.Rows, c.Background)
}
