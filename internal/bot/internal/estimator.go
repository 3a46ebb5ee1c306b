package internal

import (
	"math"

	"spades/internal/domain"
)

// Heuristic weights for the shared hand-strength estimate.
const (
	protectedKingWeight = 0.7
	highSpadeWeight     = 0.3
	voidWeight          = 0.5
	singletonWeight     = 0.3
)

// HandStrength returns the raw expected-trick estimate:
// aces + 0.7 per protected king + 0.3 per high spade. A king is protected
// when at least one other card of its suit is held; high spades are queen
// or better.
func HandStrength(hand []domain.Card) float64 {
	counts := domain.CountBySuit(hand)

	strength := 0.0
	for _, c := range hand {
		switch {
		case c.Rank == domain.Ace:
			strength += 1.0
		case c.Rank == domain.King && counts[c.Suit] >= 2:
			strength += protectedKingWeight
		}
		if c.Suit == domain.Spades && c.Rank >= domain.Queen {
			strength += highSpadeWeight
		}
	}
	return strength
}

// EstimateMinTricks is the floor of the raw hand strength.
func EstimateMinTricks(hand []domain.Card) int {
	return int(math.Floor(HandStrength(hand)))
}

// AdjustedStrength adds the shared bid adjustments to the raw estimate:
// +1 for four or more spades, +1 more for six or more, plus shape credit
// for voids and singletons.
func AdjustedStrength(hand []domain.Card) float64 {
	strength := HandStrength(hand)

	spades := domain.CountSpades(hand)
	if spades >= 4 {
		strength++
	}
	if spades >= 6 {
		strength++
	}

	counts := domain.CountBySuit(hand)
	for s := domain.Spades; s <= domain.Clubs; s++ {
		switch counts[s] {
		case 0:
			strength += voidWeight
		case 1:
			strength += singletonWeight
		}
	}
	return strength
}

// ClampBid bounds a standard bid to the legal 1..13 range.
func ClampBid(n int) int {
	if n < 1 {
		return 1
	}
	if n > 13 {
		return 13
	}
	return n
}

// RoundedBid is the adjusted estimate rounded to the nearest trick count,
// clamped to the legal range.
func RoundedBid(hand []domain.Card) int {
	return ClampBid(int(math.Round(AdjustedStrength(hand))))
}

// FlooredBid is the adjusted estimate rounded down, clamped to the legal
// range.
func FlooredBid(hand []domain.Card) int {
	return ClampBid(int(math.Floor(AdjustedStrength(hand))))
}
