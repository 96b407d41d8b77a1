// Package config provides YAML-based tier configuration loading for the
// snake platform.
package config

import (
	"fmt"
	"time"
)

// Config contains the full game configuration: one Tier per difficulty.
type Config struct {
	Tiers TierSet `yaml:"tiers"`
}

// TierSet holds the parameters of the four difficulties.
type TierSet struct {
	Easy   Tier `yaml:"easy"`
	Medium Tier `yaml:"medium"`
	Hard   Tier `yaml:"hard"`
	Insane Tier `yaml:"insane"`
}

// Tier defines the gameplay parameters of one difficulty.
type Tier struct {
	MoveIntervalMS int `yaml:"move_interval_ms"`
	Obstacles      int `yaml:"obstacles"`
}

// MoveInterval returns the tier's scheduled move interval.
func (t Tier) MoveInterval() time.Duration {
	return time.Duration(t.MoveIntervalMS) * time.Millisecond
}

// Tier returns the parameters for the given difficulty.
func (c Config) Tier(d Difficulty) Tier {
	switch d {
	case Medium:
		return c.Tiers.Medium
	case Hard:
		return c.Tiers.Hard
	case Insane:
		return c.Tiers.Insane
	default:
		return c.Tiers.Easy
	}
}

// Validate checks every tier for playable values.
func (c Config) Validate() error {
	for _, d := range Difficulties() {
		t := c.Tier(d)
		if t.MoveIntervalMS <= 0 {
			return fmt.Errorf("config: tier %s: move_interval_ms must be positive, got %d", d, t.MoveIntervalMS)
		}
		if t.Obstacles < 0 {
			return fmt.Errorf("config: tier %s: obstacles must not be negative, got %d", d, t.Obstacles)
		}
	}
	return nil
}
