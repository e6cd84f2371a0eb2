package game

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/numberguess/internal/roundid"
)

// Choice strings accepted at the replay prompt
const (
	ChoiceReplay = "y"
	ChoiceQuit   = "n"
)

// ReplayChoices lists the valid answers to the replay prompt
var ReplayChoices = []string{ChoiceReplay, ChoiceQuit}

// Prompts shown for each phase
const (
	PromptDifficulty = "Normal (0) or Hard (1): "
	PromptGuess      = "Enter your guess (0-100): "
	PromptReplay     = "Would you like to play again? (y/n): "
)

// Phase is the input the controller is waiting for
type Phase int

const (
	PhaseDifficulty Phase = iota
	PhaseGuess
	PhaseReplay
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseDifficulty:
		return "difficulty"
	case PhaseGuess:
		return "guess"
	case PhaseReplay:
		return "replay"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// TargetSource picks the secret number for each round
type TargetSource interface {
	Target() int
}

// IDSource names rounds for log correlation
type IDSource interface {
	Next() string
}

// Controller drives rounds one input line at a time.
//
// It owns the current Session and the replay loop. Front-ends call Start
// once, then show Prompt and pass each line the player enters to Handle,
// rendering the events it returns until Done reports true.
type Controller struct {
	targets TargetSource
	ids     IDSource
	clock   quartz.Clock
	logger  *log.Logger

	phase   Phase
	session *Session
	target  int
	roundID string
	started time.Time

	rounds int
	wins   int
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithClock sets the clock used to time rounds
func WithClock(clock quartz.Clock) ControllerOption {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithLogger sets the debug logger
func WithLogger(logger *log.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithIDSource sets how rounds are named
func WithIDSource(ids IDSource) ControllerOption {
	return func(c *Controller) {
		c.ids = ids
	}
}

// NewController creates a controller that draws targets from targets
func NewController(targets TargetSource, opts ...ControllerOption) *Controller {
	c := &Controller{
		targets: targets,
		clock:   quartz.NewReal(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ids == nil {
		c.ids = roundid.NewGenerator(c.clock, nil)
	}
	c.logger = c.logger.WithPrefix("game")
	return c
}

// Start emits the welcome banner and begins the first round
func (c *Controller) Start() []Event {
	return append([]Event{WelcomeEvent{}}, c.beginRound()...)
}

// Phase returns the input the controller is waiting for
func (c *Controller) Phase() Phase {
	return c.phase
}

// Done reports whether the player has left the game
func (c *Controller) Done() bool {
	return c.phase == PhaseDone
}

// Session returns the current round, nil before a difficulty is chosen
func (c *Controller) Session() *Session {
	return c.session
}

// Prompt returns the prompt text for the current phase
func (c *Controller) Prompt() string {
	switch c.phase {
	case PhaseDifficulty:
		return PromptDifficulty
	case PhaseGuess:
		return PromptGuess
	case PhaseReplay:
		return PromptReplay
	default:
		return ""
	}
}

// Handle consumes one line of player input
func (c *Controller) Handle(line string) []Event {
	switch c.phase {
	case PhaseDifficulty:
		return c.handleDifficulty(line)
	case PhaseGuess:
		return c.handleGuess(line)
	case PhaseReplay:
		return c.handleReplay(line)
	default:
		return nil
	}
}

// Quit ends the game as if the player declined to replay
func (c *Controller) Quit() []Event {
	if c.phase == PhaseDone {
		return nil
	}
	c.logger.Debug("Quitting", "phase", c.phase, "rounds", c.rounds)
	c.phase = PhaseDone
	return []Event{GoodbyeEvent{Rounds: c.rounds, Wins: c.wins}}
}

func (c *Controller) beginRound() []Event {
	c.rounds++
	c.session = nil
	c.roundID = c.ids.Next()
	c.target = c.targets.Target()
	if c.target < MinNumber || c.target > MaxNumber {
		c.logger.Error("Target out of range, clamping", "round", c.roundID, "target", c.target)
		c.target = max(MinNumber, min(c.target, MaxNumber))
	}
	c.phase = PhaseDifficulty

	c.logger.Debug("Round started", "round", c.roundID, "number", c.rounds)

	return []Event{RoundStartEvent{RoundID: c.roundID, Number: c.rounds}}
}

func (c *Controller) handleDifficulty(line string) []Event {
	choice, ok := MatchChoice(line, DifficultyChoices)
	if !ok {
		return []Event{c.invalidChoice(line, DifficultyChoices)}
	}

	difficulty := SelectDifficulty(choice)
	session := newSession(c.target, difficulty)

	c.session = session
	c.started = c.clock.Now()
	c.phase = PhaseGuess

	c.logger.Debug("Difficulty selected", "round", c.roundID, "difficulty", difficulty, "attempts", session.RemainingAttempts)

	return []Event{
		DifficultySelectedEvent{Difficulty: difficulty, Attempts: session.RemainingAttempts},
		AttemptsEvent{Remaining: session.RemainingAttempts},
	}
}

func (c *Controller) handleGuess(line string) []Event {
	guess, err := ParseGuess(line)
	if err != nil {
		kind := InvalidMalformedGuess
		if errors.Is(err, ErrGuessOutOfRange) {
			kind = InvalidGuessRange
		}
		c.logger.Debug("Rejected guess", "round", c.roundID, "kind", kind, "error", err)
		return []Event{InvalidInputEvent{Kind: kind, Input: line, Err: err}}
	}

	// PhaseGuess always holds a Playing session
	outcome := c.session.advance(guess)

	c.logger.Debug("Guess", "round", c.roundID, "guess", guess, "outcome", outcome, "remaining", c.session.RemainingAttempts)

	if c.session.State.IsTerminal() {
		return []Event{c.endRound()}
	}

	return []Event{
		GuessFeedbackEvent{Guess: guess, Outcome: outcome, Remaining: c.session.RemainingAttempts},
		AttemptsEvent{Remaining: c.session.RemainingAttempts},
	}
}

func (c *Controller) endRound() Event {
	if c.session.State == Won {
		c.wins++
	}
	c.phase = PhaseReplay

	event := RoundEndEvent{
		RoundID:  c.roundID,
		State:    c.session.State,
		Target:   c.session.Target,
		Guesses:  len(c.session.Guesses),
		Duration: c.clock.Since(c.started),
	}

	c.logger.Info("Round finished", "round", c.roundID, "state", event.State, "target", event.Target, "guesses", event.Guesses, "duration", event.Duration)

	return event
}

func (c *Controller) handleReplay(line string) []Event {
	choice, ok := MatchChoice(line, ReplayChoices)
	if !ok {
		return []Event{c.invalidChoice(line, ReplayChoices)}
	}
	if choice == ChoiceReplay {
		return c.beginRound()
	}
	return c.Quit()
}

func (c *Controller) invalidChoice(line string, options []string) Event {
	c.logger.Debug("Rejected choice", "phase", c.phase, "input", line)
	return InvalidInputEvent{Kind: InvalidChoice, Input: line, Options: options}
}
