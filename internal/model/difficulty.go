package model

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty selects how the computer opponent places its fleet and fires
type Difficulty int

// Ordered from weakest to the omniscient Oracle tier
const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyOracle
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyOracle:
		return "oracle"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// DisplayName returns a human-readable label for the difficulty
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyOracle:
		return "Oracle"
	default:
		return d.String()
	}
}

// Valid returns true for one of the four known tiers
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyOracle
}

// ThinkingTime returns the cosmetic delay range before revealing a shot
func (d Difficulty) ThinkingTime() (time.Duration, time.Duration) {
	switch d {
	case DifficultyEasy:
		return 500 * time.Millisecond, time.Second
	case DifficultyMedium:
		return time.Second, 1500 * time.Millisecond
	case DifficultyHard:
		return 1500 * time.Millisecond, 2 * time.Second
	default:
		return 2 * time.Second, 3 * time.Second
	}
}

// ParseDifficulty converts a name into a Difficulty.
// "pao" and "cheat" are accepted for the Oracle tier.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	case "oracle", "pao", "cheat":
		return DifficultyOracle, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownDifficulty)
	}
}

// ValidDifficulties returns all difficulties in ascending order
func ValidDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyOracle}
}
