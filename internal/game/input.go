package game

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrMalformedGuess is returned for guesses that are not integers
	ErrMalformedGuess = errors.New("malformed guess")

	// ErrGuessOutOfRange is returned for integer guesses outside [MinNumber, MaxNumber]
	ErrGuessOutOfRange = errors.New("guess out of range")
)

// ParseGuess validates a raw guess line.
// Neither error consumes an attempt; callers re-prompt.
func ParseGuess(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	guess, err := strconv.Atoi(trimmed)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", ErrGuessOutOfRange, trimmed)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedGuess, trimmed)
	}
	if guess < MinNumber || guess > MaxNumber {
		return 0, fmt.Errorf("%w: %d", ErrGuessOutOfRange, guess)
	}
	return guess, nil
}

// NormalizeChoice trims and lower-cases a menu answer
func NormalizeChoice(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// MatchChoice returns the normalized input if it is one of options
func MatchChoice(input string, options []string) (string, bool) {
	choice := NormalizeChoice(input)
	if slices.Contains(options, choice) {
		return choice, true
	}
	return "", false
}
