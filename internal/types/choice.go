package types

import "fmt"

// Choice is the user's reaction to a career card. It is a closed set;
// ParseChoice rejects anything outside it so unknown tags never reach the
// database.
type Choice string

const (
	ChoiceInterested    Choice = "interested"
	ChoiceMaybe         Choice = "maybe"
	ChoiceNotInterested Choice = "not_interested"
)

func ParseChoice(s string) (Choice, error) {
	switch Choice(s) {
	case ChoiceInterested:
		return ChoiceInterested, nil
	case ChoiceMaybe:
		return ChoiceMaybe, nil
	case ChoiceNotInterested:
		return ChoiceNotInterested, nil
	default:
		return "", fmt.Errorf("invalid choice %q", s)
	}
}

// Difficulty grades a career card.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyBeginner:
		return DifficultyBeginner, nil
	case DifficultyIntermediate:
		return DifficultyIntermediate, nil
	case DifficultyAdvanced:
		return DifficultyAdvanced, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q", s)
	}
}
