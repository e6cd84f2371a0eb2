package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/numberguess/internal/theme"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numberguess.hcl")
	src := `
game {
  seed = 99
}

ui {
  log_level    = "debug"
  log_file     = "game.log"
  color        = "never"
  glyph        = "*"
  show_summary = true
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, "game.log", cfg.UI.LogFile)
	assert.Equal(t, theme.ColorNever, cfg.UI.Color)
	assert.Equal(t, "*", cfg.UI.Glyph)
	assert.True(t, cfg.UI.ShowSummary)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestParsePartialUIKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`ui { show_summary = true }`), "partial.hcl")
	require.NoError(t, err)

	assert.True(t, cfg.UI.ShowSummary)
	assert.Equal(t, "info", cfg.UI.LogLevel)
	assert.Equal(t, theme.ColorAuto, cfg.UI.Color)
	assert.Equal(t, "❤", cfg.UI.Glyph)
	assert.Zero(t, cfg.Game.Seed)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `ui {`, "failed to parse HCL file"},
		{"unknown attribute", `ui { colour = "never" }`, "failed to decode HCL"},
		{"bad level", `ui { log_level = "loud" }`, "invalid log level"},
		{"bad color", `ui { color = "sometimes" }`, "invalid color mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
