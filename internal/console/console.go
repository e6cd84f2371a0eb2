// Package console plays the game over plain text input and output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/numberguess/internal/game"
	"github.com/lox/numberguess/internal/theme"
)

var errEndOfInput = errors.New("end of input")

// Options configures a Console
type Options struct {
	Formatting game.FormattingOptions
	Theme      *theme.Theme // nil renders without colour
	Logger     *log.Logger
}

// Console reads player input line by line and prints the controller's events
type Console struct {
	in         *bufio.Reader
	out        io.Writer
	controller *game.Controller
	formatter  *game.EventFormatter
	theme      *theme.Theme
	logger     *log.Logger
}

// New creates a console over in and out
func New(in io.Reader, out io.Writer, controller *game.Controller, opts Options) *Console {
	th := opts.Theme
	if th == nil {
		th = theme.New(theme.NewRenderer(out, theme.ColorNever))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Console{
		in:         bufio.NewReader(in),
		out:        out,
		controller: controller,
		formatter:  game.NewEventFormatter(opts.Formatting),
		theme:      th,
		logger:     logger.WithPrefix("console"),
	}
}

// Run plays rounds until the player declines to play again.
// Running out of input ends the game as if the player had quit.
func (c *Console) Run(ctx context.Context) error {
	c.render(c.controller.Start())

	for !c.controller.Done() {
		err := c.runRound(ctx)
		if err == nil {
			err = c.askReplay(ctx)
		}
		if errors.Is(err, errEndOfInput) {
			c.logger.Debug("Input closed", "phase", c.controller.Phase())
			fmt.Fprintln(c.out)
			c.render(c.controller.Quit())
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// runRound reads input until the current round is won or lost
func (c *Console) runRound(ctx context.Context) error {
	for c.controller.Phase() == game.PhaseDifficulty || c.controller.Phase() == game.PhaseGuess {
		if err := c.step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// askReplay reads input until the player answers the replay prompt
func (c *Console) askReplay(ctx context.Context) error {
	for c.controller.Phase() == game.PhaseReplay {
		if err := c.step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// step prompts for and handles a single line
func (c *Console) step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprint(c.out, c.theme.Prompt(c.controller.Prompt()))

	// lines have no length limit; a final line without a newline still counts
	line, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return errEndOfInput
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}

	c.render(c.controller.Handle(strings.TrimRight(line, "\r\n")))
	return nil
}

func (c *Console) render(events []game.Event) {
	for _, event := range events {
		for _, line := range c.formatter.Format(event) {
			fmt.Fprintln(c.out, c.theme.Render(line))
		}
	}
}
