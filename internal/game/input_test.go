package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGuess(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{"plain", "42", 42, nil},
		{"padded", "  7\n", 7, nil},
		{"lower bound", "0", 0, nil},
		{"upper bound", "100", 100, nil},
		{"word", "abc", 0, ErrMalformedGuess},
		{"empty", "", 0, ErrMalformedGuess},
		{"decimal", "4.5", 0, ErrMalformedGuess},
		{"too big", "150", 0, ErrGuessOutOfRange},
		{"negative", "-1", 0, ErrGuessOutOfRange},
		{"overflows int", "99999999999999999999", 0, ErrGuessOutOfRange},
		{"overflows negative", "-99999999999999999999", 0, ErrGuessOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGuess(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchChoice(t *testing.T) {
	choice, ok := MatchChoice(" Y \n", ReplayChoices)
	assert.True(t, ok)
	assert.Equal(t, "y", choice)

	choice, ok = MatchChoice("1", DifficultyChoices)
	assert.True(t, ok)
	assert.Equal(t, ChoiceHard, choice)

	_, ok = MatchChoice("2", DifficultyChoices)
	assert.False(t, ok)

	_, ok = MatchChoice("yes", ReplayChoices)
	assert.False(t, ok)
}
