// Package theme maps formatted game lines to lipgloss styles.
package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/numberguess/internal/game"
)

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Palette
var (
	colorText    = lipgloss.Color("#FAFAFA")
	colorAccent  = lipgloss.Color("#7D56F4")
	colorGreen   = lipgloss.Color("#96CEB4")
	colorRed     = lipgloss.Color("#FF6B6B")
	colorYellow  = lipgloss.Color("#FFEAA7")
	colorGold    = lipgloss.Color("#FFD700")
	colorMuted   = lipgloss.Color("#626262")
	colorPrompt  = lipgloss.Color("#04B575")
	colorHearts  = lipgloss.Color("#FF5F87")
	colorDivider = lipgloss.Color("#3C3C3C")
)

// NewRenderer returns a renderer for w honouring the colour mode.
// ColorAuto lets termenv detect the terminal.
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}

// Theme holds the styles for one renderer
type Theme struct {
	styles map[game.LineKind]lipgloss.Style
	prompt lipgloss.Style
}

// New builds the styles against r
func New(r *lipgloss.Renderer) *Theme {
	return &Theme{
		styles: map[game.LineKind]lipgloss.Style{
			game.LinePlain:   r.NewStyle().Foreground(colorText),
			game.LineBanner:  r.NewStyle().Foreground(colorDivider),
			game.LineTitle:   r.NewStyle().Foreground(colorAccent).Bold(true),
			game.LineHearts:  r.NewStyle().Foreground(colorHearts),
			game.LineHint:    r.NewStyle().Foreground(colorGold).Bold(true),
			game.LineSuccess: r.NewStyle().Foreground(colorGreen).Bold(true),
			game.LineFailure: r.NewStyle().Foreground(colorRed).Bold(true),
			game.LineWarning: r.NewStyle().Foreground(colorYellow).Bold(true),
			game.LineInfo:    r.NewStyle().Foreground(colorMuted),
		},
		prompt: r.NewStyle().Foreground(colorPrompt).Bold(true),
	}
}

// Render styles a single line. Empty lines stay empty.
func (t *Theme) Render(line game.Line) string {
	if line.Text == "" {
		return ""
	}
	style, ok := t.styles[line.Kind]
	if !ok {
		return line.Text
	}
	return style.Render(line.Text)
}

// Prompt styles prompt text
func (t *Theme) Prompt(text string) string {
	return t.prompt.Render(text)
}
