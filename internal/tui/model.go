// Package tui implements the full-screen front-end using Bubble Tea.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/numberguess/internal/game"
	"github.com/lox/numberguess/internal/theme"
)

// Options configures a Model
type Options struct {
	Formatting game.FormattingOptions
	Theme      *theme.Theme
	Logger     *log.Logger
}

// Model is the Bubble Tea model wrapping a game controller
type Model struct {
	controller *game.Controller
	formatter  *game.EventFormatter
	theme      *theme.Theme
	logger     *log.Logger

	transcript []string // plain text
	rendered   []string // styled, same length as transcript
	logView    viewport.Model
	input      textinput.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates the model and starts the controller
func NewModel(controller *game.Controller, opts Options) *Model {
	th := opts.Theme
	if th == nil {
		th = theme.New(lipgloss.DefaultRenderer())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()

	m := &Model{
		controller: controller,
		formatter:  game.NewEventFormatter(opts.Formatting),
		theme:      th,
		logger:     logger.WithPrefix("tui"),
		logView:    viewport.New(80, 20),
		input:      ti,
	}

	m.appendEvents(controller.Start())
	m.syncPrompt()
	return m
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width
		m.logView.Height = max(msg.Height-2, 1)
		m.logView.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Debug("Quit requested")
			m.appendEvents(m.controller.Quit())
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m, m.submit()

		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.logView, cmd = m.logView.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the current input line to the controller
func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()

	prompt := m.controller.Prompt()
	m.transcript = append(m.transcript, prompt+line)
	m.rendered = append(m.rendered, m.theme.Prompt(prompt)+line)
	m.appendEvents(m.controller.Handle(line))
	m.syncPrompt()

	if m.controller.Done() {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return strings.Join(m.rendered, "\n") + "\n"
	}
	return m.logView.View() + "\n" + m.input.View()
}

// Transcript returns every line shown so far, unstyled
func (m *Model) Transcript() []string {
	return m.transcript
}

func (m *Model) appendEvents(events []game.Event) {
	for _, event := range events {
		for _, line := range m.formatter.Format(event) {
			m.transcript = append(m.transcript, line.Text)
			m.rendered = append(m.rendered, m.theme.Render(line))
		}
	}
	m.refresh()
}

func (m *Model) refresh() {
	var b strings.Builder
	for _, line := range m.rendered {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	m.logView.SetContent(b.String())
	m.logView.GotoBottom()
}

func (m *Model) syncPrompt() {
	m.input.Prompt = m.theme.Prompt(m.controller.Prompt())
	if session := m.controller.Session(); session != nil && m.controller.Phase() == game.PhaseGuess {
		m.input.Placeholder = m.formatter.Hearts(session.RemainingAttempts)
	} else {
		m.input.Placeholder = ""
	}
}
