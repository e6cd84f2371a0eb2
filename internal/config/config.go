// Package config loads the optional HCL configuration file.
//
// Every setting has a default, so the game runs without a file:
//
//	game {
//	  seed = 1234
//	}
//
//	ui {
//	  log_level    = "debug"
//	  log_file     = "numberguess.log"
//	  color        = "never"
//	  glyph        = "*"
//	  show_summary = true
//	}
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/numberguess/internal/game"
	"github.com/lox/numberguess/internal/theme"
)

// Config is the complete configuration
type Config struct {
	Game GameSettings
	UI   UISettings
}

// GameSettings controls how rounds are generated
type GameSettings struct {
	Seed int64 `hcl:"seed,optional"` // 0 picks a random seed
}

// UISettings controls output and logging
type UISettings struct {
	LogLevel    string `hcl:"log_level,optional"`
	LogFile     string `hcl:"log_file,optional"` // empty disables the debug log
	Color       string `hcl:"color,optional"`
	Glyph       string `hcl:"glyph,optional"`
	ShowSummary bool   `hcl:"show_summary,optional"`
}

// file mirrors Config with optional blocks
type file struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		UI: UISettings{
			LogLevel: "info",
			Color:    theme.ColorAuto,
			Glyph:    game.DefaultGlyph,
		},
	}
}

// Load reads a configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for anything unset
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := DefaultConfig()
	defaults := cfg.UI

	if raw.Game != nil {
		cfg.Game = *raw.Game
	}
	if raw.UI != nil {
		cfg.UI = *raw.UI
		if cfg.UI.LogLevel == "" {
			cfg.UI.LogLevel = defaults.LogLevel
		}
		if cfg.UI.Color == "" {
			cfg.UI.Color = defaults.Color
		}
		if cfg.UI.Glyph == "" {
			cfg.UI.Glyph = defaults.Glyph
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values a file could get wrong
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	switch c.UI.Color {
	case theme.ColorAuto, theme.ColorAlways, theme.ColorNever:
	default:
		return fmt.Errorf("invalid color mode: %s", c.UI.Color)
	}

	return nil
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
