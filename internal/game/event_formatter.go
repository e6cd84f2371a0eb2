package game

import (
	"fmt"
	"strings"
	"time"
)

// DefaultGlyph marks one remaining attempt
const DefaultGlyph = "❤"

const bannerWidth = 40

// LineKind tells a front-end how to style a formatted line
type LineKind int

const (
	LinePlain LineKind = iota
	LineBanner
	LineTitle
	LineHearts
	LineHint
	LineSuccess
	LineFailure
	LineWarning
	LineInfo
)

// Line is a single formatted output line
type Line struct {
	Text string
	Kind LineKind
}

// FormattingOptions controls how events are rendered
type FormattingOptions struct {
	Glyph       string // attempt indicator, DefaultGlyph when empty
	ShowSummary bool   // add guesses taken and duration to round results
}

// EventFormatter turns controller events into output lines
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	if opts.Glyph == "" {
		opts.Glyph = DefaultGlyph
	}
	return &EventFormatter{opts: opts}
}

// Format renders an event. Unknown events render to nothing.
func (ef *EventFormatter) Format(event Event) []Line {
	switch e := event.(type) {
	case WelcomeEvent:
		return []Line{
			banner(),
			{Text: "Welcome to the Number Guessing Game!", Kind: LineTitle},
			banner(),
		}
	case RoundStartEvent:
		return []Line{
			blank(),
			banner(),
			{Text: "New Game Started!", Kind: LineTitle},
			banner(),
			blank(),
			{Text: "Select Difficulty:"},
		}
	case DifficultySelectedEvent:
		return []Line{
			{Text: fmt.Sprintf("%s Difficulty Selected", e.Difficulty), Kind: LineInfo},
			blank(),
			{Text: fmt.Sprintf("Guess the number between %d and %d!", MinNumber, MaxNumber)},
			{Text: fmt.Sprintf("You have %d attempts.", e.Attempts)},
		}
	case AttemptsEvent:
		return []Line{
			blank(),
			{Text: "Attempts remaining: " + ef.Hearts(e.Remaining), Kind: LineHearts},
		}
	case GuessFeedbackEvent:
		return []Line{ef.formatFeedback(e)}
	case RoundEndEvent:
		return ef.formatRoundEnd(e)
	case InvalidInputEvent:
		return []Line{formatInvalid(e)}
	case GoodbyeEvent:
		return []Line{
			blank(),
			banner(),
			{Text: "Thanks for playing! Goodbye! 👋", Kind: LineTitle},
			banner(),
		}
	}
	return nil
}

// Hearts returns one glyph per remaining attempt
func (ef *EventFormatter) Hearts(remaining int) string {
	if remaining <= 0 {
		return ""
	}
	return strings.TrimSpace(strings.Repeat(ef.opts.Glyph+" ", remaining))
}

func (ef *EventFormatter) formatFeedback(e GuessFeedbackEvent) Line {
	if e.Outcome == TooHigh {
		return Line{Text: fmt.Sprintf("%d is too high! ↓", e.Guess), Kind: LineHint}
	}
	return Line{Text: fmt.Sprintf("%d is too low! ↑", e.Guess), Kind: LineHint}
}

func (ef *EventFormatter) formatRoundEnd(e RoundEndEvent) []Line {
	lines := []Line{blank(), banner()}

	switch e.State {
	case Won:
		lines = append(lines, Line{Text: "Congratulations! You Win! 🎉", Kind: LineSuccess})
	case Lost:
		lines = append(lines,
			Line{Text: fmt.Sprintf("The correct number was: %d", e.Target), Kind: LineInfo},
			Line{Text: "You Lose! Better luck next time! 💔", Kind: LineFailure},
		)
	}

	if ef.opts.ShowSummary {
		lines = append(lines, Line{
			Text: fmt.Sprintf("Guesses: %d, time: %s", e.Guesses, e.Duration.Round(time.Second)),
			Kind: LineInfo,
		})
	}

	return append(lines, banner(), blank())
}

func formatInvalid(e InvalidInputEvent) Line {
	switch e.Kind {
	case InvalidGuessRange:
		return Line{Text: fmt.Sprintf("Please enter a number between %d and %d.", MinNumber, MaxNumber), Kind: LineWarning}
	case InvalidMalformedGuess:
		return Line{Text: "Invalid input. Please enter a valid integer.", Kind: LineWarning}
	default:
		return Line{Text: "Invalid input. Please choose from: " + strings.Join(e.Options, ", "), Kind: LineWarning}
	}
}

func banner() Line {
	return Line{Text: strings.Repeat("=", bannerWidth), Kind: LineBanner}
}

func blank() Line {
	return Line{}
}
