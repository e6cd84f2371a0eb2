package theme

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/lox/numberguess/internal/game"
)

func TestNeverColorRendersPlainText(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, ColorNever)
	assert.Equal(t, termenv.Ascii, r.ColorProfile())

	th := New(r)
	assert.Equal(t, "You Lose!", th.Render(game.Line{Text: "You Lose!", Kind: game.LineFailure}))
	assert.Equal(t, "> ", th.Prompt("> "))
}

func TestAlwaysColorAddsEscapes(t *testing.T) {
	th := New(NewRenderer(&bytes.Buffer{}, ColorAlways))

	out := th.Render(game.Line{Text: "42 is too high! ↓", Kind: game.LineHint})
	assert.Contains(t, out, "42 is too high! ↓")
	assert.Contains(t, out, "\x1b[")
}

func TestEmptyLineStaysEmpty(t *testing.T) {
	th := New(NewRenderer(&bytes.Buffer{}, ColorAlways))
	assert.Empty(t, th.Render(game.Line{Kind: game.LineBanner}))
}
