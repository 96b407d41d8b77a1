package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in tier table.
func DefaultConfig() Config {
	return Config{
		Tiers: TierSet{
			Easy:   Tier{MoveIntervalMS: 600, Obstacles: 0},
			Medium: Tier{MoveIntervalMS: 300, Obstacles: 5},
			Hard:   Tier{MoveIntervalMS: 200, Obstacles: 10},
			Insane: Tier{MoveIntervalMS: 50, Obstacles: 15},
		},
	}
}
