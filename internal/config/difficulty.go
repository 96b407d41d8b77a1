package config

import (
	"fmt"
	"strings"
)

// Difficulty names one of the four speed tiers.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Insane Difficulty = "insane"
)

// Difficulties returns the tiers in menu order, slowest first.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Insane}
}

// ParseDifficulty maps a user-supplied tier name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "insane":
		return Insane, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, medium, hard, insane)", s)
	}
}

func (d Difficulty) String() string {
	return string(d)
}
