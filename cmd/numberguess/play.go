package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/numberguess/internal/console"
	"github.com/lox/numberguess/internal/theme"
	"github.com/lox/numberguess/internal/tui"
)

// PlayCmd runs the game with plain line prompts
type PlayCmd struct{}

func (cmd *PlayCmd) Run(globals *Globals) error {
	a, err := globals.setup()
	if err != nil {
		return err
	}
	defer a.closeLog()

	c := console.New(os.Stdin, os.Stdout, a.controller, console.Options{
		Formatting: a.formatting(),
		Theme:      theme.New(theme.NewRenderer(os.Stdout, a.cfg.UI.Color)),
		Logger:     a.logger,
	})
	return c.Run(context.Background())
}

// TUICmd runs the game in a Bubble Tea program
type TUICmd struct{}

func (cmd *TUICmd) Run(globals *Globals) error {
	a, err := globals.setup()
	if err != nil {
		return err
	}
	defer a.closeLog()

	model := tui.NewModel(a.controller, tui.Options{
		Formatting: a.formatting(),
		Theme:      theme.New(theme.NewRenderer(os.Stdout, a.cfg.UI.Color)),
		Logger:     a.logger,
	})

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
