package game

import (
	"errors"
	"fmt"
)

// Bounds of the secret number and of accepted guesses, inclusive
const (
	MinNumber = 0
	MaxNumber = 100
)

var (
	// ErrRoundOver is returned when a guess is applied to a finished session
	ErrRoundOver = errors.New("round is over")

	// ErrTargetOutOfRange is returned when a session is created with a target outside the bounds
	ErrTargetOutOfRange = errors.New("target out of range")
)

// State is the lifecycle state of a Session
type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further guesses can be applied
func (s State) IsTerminal() bool {
	return s == Won || s == Lost
}

// Outcome is the result of comparing a guess to the target
type Outcome int

const (
	Correct Outcome = iota
	TooHigh
	TooLow
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case TooHigh:
		return "too_high"
	case TooLow:
		return "too_low"
	default:
		return "unknown"
	}
}

// EvaluateGuess compares a guess to the target
func EvaluateGuess(target, guess int) Outcome {
	switch {
	case guess > target:
		return TooHigh
	case guess < target:
		return TooLow
	default:
		return Correct
	}
}

// Session holds the state of a single round
type Session struct {
	Target            int
	Difficulty        Difficulty
	RemainingAttempts int
	State             State
	Guesses           []int
}

// NewSession starts a round with the attempt budget of the given difficulty
func NewSession(target int, difficulty Difficulty) (*Session, error) {
	if target < MinNumber || target > MaxNumber {
		return nil, fmt.Errorf("%w: %d", ErrTargetOutOfRange, target)
	}
	return newSession(target, difficulty), nil
}

// newSession builds a session for a target already known to be in range
func newSession(target int, difficulty Difficulty) *Session {
	return &Session{
		Target:            target,
		Difficulty:        difficulty,
		RemainingAttempts: difficulty.Attempts(),
		State:             Playing,
	}
}

// Advance applies one guess to the session.
//
// A correct guess wins the round. Any other guess costs one attempt and the
// round is lost when no attempts remain.
func (s *Session) Advance(guess int) (Outcome, error) {
	if s.State.IsTerminal() {
		return Correct, fmt.Errorf("%w: session is %s", ErrRoundOver, s.State)
	}
	return s.advance(guess), nil
}

// advance applies a guess to a session that is still Playing
func (s *Session) advance(guess int) Outcome {
	outcome := EvaluateGuess(s.Target, guess)
	s.Guesses = append(s.Guesses, guess)

	if outcome == Correct {
		s.State = Won
		return outcome
	}

	if s.RemainingAttempts > 0 {
		s.RemainingAttempts--
	}
	if s.RemainingAttempts == 0 {
		s.State = Lost
	}
	return outcome
}
