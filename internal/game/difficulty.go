package game

// Difficulty selects the attempt budget for a round
type Difficulty int

const (
	Normal Difficulty = iota
	Hard
)

// Choice strings accepted at the difficulty prompt
const (
	ChoiceNormal = "0"
	ChoiceHard   = "1"
)

// DifficultyChoices lists the valid answers to the difficulty prompt
var DifficultyChoices = []string{ChoiceNormal, ChoiceHard}

// String returns the display name of the difficulty
func (d Difficulty) String() string {
	switch d {
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Attempts returns the initial number of attempts for the difficulty
func (d Difficulty) Attempts() int {
	switch d {
	case Hard:
		return 5
	default:
		return 10
	}
}

// SelectDifficulty maps a validated difficulty choice to a Difficulty.
// Anything other than ChoiceNormal selects Hard.
func SelectDifficulty(choice string) Difficulty {
	if choice == ChoiceNormal {
		return Normal
	}
	return Hard
}
