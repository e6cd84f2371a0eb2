// Package game implements the number guessing game.
//
// A Session holds one round: the secret target, the remaining attempts and
// whether the round is still being played. Sessions only move forward:
//
//	s, _ := game.NewSession(42, game.Normal)
//	outcome, _ := s.Advance(50) // TooHigh, 9 attempts left
//	outcome, _ = s.Advance(42)  // Correct, s.State == game.Won
//
// # Controller
//
// Controller wraps sessions in the prompt loop a player sees: choose a
// difficulty, guess until the round ends, then decide whether to play again.
// It consumes one line of input at a time and returns Events, so the same
// controller drives the plain console and the TUI:
//
//	c := game.NewController(targets)
//	render(c.Start())
//	for !c.Done() {
//	    fmt.Print(c.Prompt())
//	    render(c.Handle(readLine()))
//	}
//
// Malformed and out-of-range input produces an InvalidInputEvent and never
// costs an attempt.
//
// # Deterministic Testing
//
// Targets come from a TargetSource and round timing from a quartz.Clock, so
// tests can fix both:
//
//	c := game.NewController(fixedTargets{42}, game.WithClock(quartz.NewMock(t)))
package game
