package game

import "time"

// EventType identifies a controller event
type EventType string

const (
	EventTypeWelcome            EventType = "welcome"
	EventTypeRoundStart         EventType = "round_start"
	EventTypeDifficultySelected EventType = "difficulty_selected"
	EventTypeAttempts           EventType = "attempts"
	EventTypeGuessFeedback      EventType = "guess_feedback"
	EventTypeRoundEnd           EventType = "round_end"
	EventTypeInvalidInput       EventType = "invalid_input"
	EventTypeGoodbye            EventType = "goodbye"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything the controller reports back to a front-end
type Event interface {
	EventType() EventType
}

// WelcomeEvent is emitted once when the controller starts
type WelcomeEvent struct{}

func (WelcomeEvent) EventType() EventType { return EventTypeWelcome }

// RoundStartEvent is emitted when a new round begins and a target has been picked
type RoundStartEvent struct {
	RoundID string
	Number  int
}

func (RoundStartEvent) EventType() EventType { return EventTypeRoundStart }

// DifficultySelectedEvent is emitted once the player picks a difficulty
type DifficultySelectedEvent struct {
	Difficulty Difficulty
	Attempts   int
}

func (DifficultySelectedEvent) EventType() EventType { return EventTypeDifficultySelected }

// AttemptsEvent is emitted before every guess prompt
type AttemptsEvent struct {
	Remaining int
}

func (AttemptsEvent) EventType() EventType { return EventTypeAttempts }

// GuessFeedbackEvent reports a wrong guess while the round is still running
type GuessFeedbackEvent struct {
	Guess     int
	Outcome   Outcome
	Remaining int
}

func (GuessFeedbackEvent) EventType() EventType { return EventTypeGuessFeedback }

// RoundEndEvent is emitted when a round reaches Won or Lost
type RoundEndEvent struct {
	RoundID  string
	State    State
	Target   int
	Guesses  int
	Duration time.Duration
}

func (RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }

// InvalidKind classifies rejected input
type InvalidKind int

const (
	InvalidChoice InvalidKind = iota
	InvalidMalformedGuess
	InvalidGuessRange
)

func (k InvalidKind) String() string {
	switch k {
	case InvalidChoice:
		return "choice"
	case InvalidMalformedGuess:
		return "malformed_guess"
	case InvalidGuessRange:
		return "guess_range"
	default:
		return "unknown"
	}
}

// InvalidInputEvent reports input that was rejected; the prompt is repeated
type InvalidInputEvent struct {
	Kind    InvalidKind
	Input   string
	Options []string // valid answers, for InvalidChoice
	Err     error
}

func (InvalidInputEvent) EventType() EventType { return EventTypeInvalidInput }

// GoodbyeEvent is emitted when the player declines to play again
type GoodbyeEvent struct {
	Rounds int
	Wins   int
}

func (GoodbyeEvent) EventType() EventType { return EventTypeGoodbye }
