package bot

import (
	"math/rand"
	"time"
)

// Tuning holds the numeric knobs for one difficulty tier. Think-delay
// bounds are pacing hints for the driver and never affect decisions.
type Tuning struct {
	RandomPlayChance float64 // chance to play a uniformly random legal card
	HighLeadChance   float64 // chance to lead the highest non-spade
	TeamTotalHigh    int     // combined bid above which the bid is reduced
	TeamTotalLow     int     // combined bid below which the bid is boosted
	BidReduction     int     // tricks shaved when the team total runs high
	MaxBoostedBid    int     // cap on a boosted bid
	NilChance        float64 // chance to declare nil when the hand qualifies
	NilEstimateMax   int     // max trick estimate for a nil candidate hand
	NilSpadeMax      int     // max spade count for a nil candidate hand
	ThinkDelayMin    time.Duration
	ThinkDelayMax    time.Duration
}

var easyTuning = Tuning{
	RandomPlayChance: 0.7,
	ThinkDelayMin:    400 * time.Millisecond,
	ThinkDelayMax:    1200 * time.Millisecond,
}

var mediumTuning = Tuning{
	HighLeadChance: 0.6,
	TeamTotalHigh:  11,
	BidReduction:   1,
	ThinkDelayMin:  600 * time.Millisecond,
	ThinkDelayMax:  1600 * time.Millisecond,
}

var hardTuning = Tuning{
	TeamTotalHigh:  12,
	TeamTotalLow:   6,
	BidReduction:   2,
	MaxBoostedBid:  8,
	NilChance:      0.3,
	NilEstimateMax: 1,
	NilSpadeMax:    2,
	ThinkDelayMin:  800 * time.Millisecond,
	ThinkDelayMax:  2000 * time.Millisecond,
}

func tuningFor(level Level) Tuning {
	switch level {
	case LevelEasy:
		return easyTuning
	case LevelHard:
		return hardTuning
	default:
		return mediumTuning
	}
}

// ThinkDelay returns a suggested pause before a bot of this level acts.
func (l Level) ThinkDelay(rng *rand.Rand) time.Duration {
	t := tuningFor(l)
	span := t.ThinkDelayMax - t.ThinkDelayMin
	if span <= 0 {
		return t.ThinkDelayMin
	}
	return t.ThinkDelayMin + time.Duration(rng.Int63n(int64(span)))
}
