package bot

import (
	"fmt"
	"math/rand"
)

// NewBrain creates a new AI brain for the specified difficulty level. The
// provided rng drives the easy and hard tiers' randomized choices.
func NewBrain(level Level, rng *rand.Rand) (Brain, error) {
	switch level {
	case LevelEasy:
		return &EasyBot{rng: rng}, nil
	case LevelMedium:
		return &MediumBot{rng: rng}, nil
	case LevelHard:
		return &HardBot{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}

// ParseLevel validates a difficulty string.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelEasy, LevelMedium, LevelHard:
		return Level(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
}
