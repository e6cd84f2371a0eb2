package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/numberguess/internal/config"
	"github.com/lox/numberguess/internal/game"
	"github.com/lox/numberguess/internal/randutil"
	"github.com/lox/numberguess/internal/theme"
)

// app is everything a command needs to start playing
type app struct {
	cfg        *config.Config
	logger     *log.Logger
	controller *game.Controller
	closeLog   func()
}

// loadConfig reads the config file, if any, and applies flag overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if g.Config != "" {
		var err error
		cfg, err = config.Load(g.Config)
		if err != nil {
			return nil, err
		}
	}

	if g.Seed != 0 {
		cfg.Game.Seed = g.Seed
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}
	if g.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if g.NoColor {
		cfg.UI.Color = theme.ColorNever
	}

	return cfg, cfg.Validate()
}

func (g *Globals) setup() (*app, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Starting", "version", version, "seed", cfg.Game.Seed)

	targets := randutil.NewTargets(randutil.New(cfg.Game.Seed), game.MinNumber, game.MaxNumber)

	return &app{
		cfg:        cfg,
		logger:     logger,
		controller: game.NewController(targets, game.WithLogger(logger)),
		closeLog:   closeLog,
	}, nil
}

func (a *app) formatting() game.FormattingOptions {
	return game.FormattingOptions{
		Glyph:       a.cfg.UI.Glyph,
		ShowSummary: a.cfg.UI.ShowSummary,
	}
}

// newLogger opens the debug log. Without a log file nothing is logged.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	if cfg.UI.LogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	debugFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create debug log: %w", err)
	}

	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "MAIN",
		Level:           cfg.Level(),
	})

	closeLog := func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}
	return logger, closeLog, nil
}
