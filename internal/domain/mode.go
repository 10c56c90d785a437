package domain

import (
	"fmt"
	"strings"
)

type Mode string
type Difficulty string

const (
	ModeFlags    Mode = "flags"
	ModeCapitals Mode = "capitals"

	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeFlags, ModeCapitals:
		return true
	default:
		return false
	}
}

// Answer returns the text a player has to produce for country in this mode.
func (m Mode) Answer(country Country) string {
	if m == ModeCapitals {
		return country.Capital
	}
	return country.Name
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyHard:
		return true
	default:
		return false
	}
}

func ParseMode(raw string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
	return mode, nil
}

func ParseDifficulty(raw string) (Difficulty, error) {
	difficulty := Difficulty(strings.ToLower(strings.TrimSpace(raw)))
	if !difficulty.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, raw)
	}
	return difficulty, nil
}
