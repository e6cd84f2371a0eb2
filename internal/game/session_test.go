package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateGuess(t *testing.T) {
	for target := MinNumber; target <= MaxNumber; target += 7 {
		for guess := MinNumber - 5; guess <= MaxNumber+5; guess++ {
			outcome := EvaluateGuess(target, guess)
			switch {
			case guess == target:
				assert.Equal(t, Correct, outcome, "target=%d guess=%d", target, guess)
			case guess > target:
				assert.Equal(t, TooHigh, outcome, "target=%d guess=%d", target, guess)
			default:
				assert.Equal(t, TooLow, outcome, "target=%d guess=%d", target, guess)
			}
		}
	}
}

func TestNewSessionAttemptBudget(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		attempts   int
	}{
		{Normal, 10},
		{Hard, 5},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			s, err := NewSession(50, tt.difficulty)
			require.NoError(t, err)
			assert.Equal(t, tt.attempts, s.RemainingAttempts)
			assert.Equal(t, Playing, s.State)
			assert.Empty(t, s.Guesses)
		})
	}
}

func TestNewSessionRejectsTargetOutOfRange(t *testing.T) {
	_, err := NewSession(-1, Normal)
	assert.ErrorIs(t, err, ErrTargetOutOfRange)

	_, err = NewSession(101, Normal)
	assert.ErrorIs(t, err, ErrTargetOutOfRange)

	for _, target := range []int{MinNumber, MaxNumber} {
		_, err = NewSession(target, Normal)
		assert.NoError(t, err)
	}
}

func TestAdvanceCorrectGuessWins(t *testing.T) {
	s, err := NewSession(42, Normal)
	require.NoError(t, err)

	outcome, err := s.Advance(42)
	require.NoError(t, err)

	assert.Equal(t, Correct, outcome)
	assert.Equal(t, Won, s.State)
	assert.Equal(t, 10, s.RemainingAttempts, "a correct guess costs nothing")
	assert.Equal(t, []int{42}, s.Guesses)
}

func TestAdvanceWrongGuessCostsOneAttempt(t *testing.T) {
	s, err := NewSession(42, Hard)
	require.NoError(t, err)

	outcome, err := s.Advance(90)
	require.NoError(t, err)
	assert.Equal(t, TooHigh, outcome)
	assert.Equal(t, 4, s.RemainingAttempts)
	assert.Equal(t, Playing, s.State)

	outcome, err = s.Advance(3)
	require.NoError(t, err)
	assert.Equal(t, TooLow, outcome)
	assert.Equal(t, 3, s.RemainingAttempts)
	assert.Equal(t, Playing, s.State)
}

func TestAdvanceExhaustsAttempts(t *testing.T) {
	s, err := NewSession(42, Normal)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		before := s.RemainingAttempts
		_, err := s.Advance(0)
		require.NoError(t, err)
		assert.Equal(t, before-1, s.RemainingAttempts)
		assert.GreaterOrEqual(t, s.RemainingAttempts, 0)
	}

	assert.Equal(t, Lost, s.State)
	assert.Equal(t, 0, s.RemainingAttempts)
	assert.Equal(t, 42, s.Target)
	assert.Len(t, s.Guesses, 10)
}

func TestAdvanceAfterRoundOver(t *testing.T) {
	t.Run("won", func(t *testing.T) {
		s, _ := NewSession(7, Hard)
		_, _ = s.Advance(7)

		_, err := s.Advance(8)
		assert.ErrorIs(t, err, ErrRoundOver)
		assert.Equal(t, Won, s.State)
		assert.Len(t, s.Guesses, 1)
	})

	t.Run("lost", func(t *testing.T) {
		s, _ := NewSession(7, Hard)
		for i := 0; i < 5; i++ {
			_, _ = s.Advance(8)
		}

		_, err := s.Advance(7)
		assert.ErrorIs(t, err, ErrRoundOver)
		assert.Equal(t, Lost, s.State)
		assert.Equal(t, 0, s.RemainingAttempts)
	})
}

func TestSelectDifficulty(t *testing.T) {
	assert.Equal(t, Normal, SelectDifficulty(ChoiceNormal))
	assert.Equal(t, Hard, SelectDifficulty(ChoiceHard))
	assert.Equal(t, 10, SelectDifficulty("0").Attempts())
	assert.Equal(t, 5, SelectDifficulty("1").Attempts())
}

func TestStateIsTerminal(t *testing.T) {
	assert.False(t, Playing.IsTerminal())
	assert.True(t, Won.IsTerminal())
	assert.True(t, Lost.IsTerminal())
}
