package internal

import "spades/internal/domain"

// WinningPlays returns the legal cards that would beat the current best
// card in the trick. Returns nil when the trick is empty.
func WinningPlays(legal []domain.Card, trick *domain.Trick) []domain.Card {
	if trick == nil || len(trick.Plays) == 0 {
		return nil
	}
	best := domain.WinningPlay(trick).Card

	var out []domain.Card
	for _, c := range legal {
		if domain.Beats(c, best, trick.LeadSuit) {
			out = append(out, c)
		}
	}
	return out
}

// PartnerWinning reports whether the partner of seat currently holds the
// best card in the trick.
func PartnerWinning(trick *domain.Trick, seat domain.Seat) bool {
	if trick == nil || len(trick.Plays) == 0 {
		return false
	}
	return domain.WinningPlay(trick).Seat == seat.Partner()
}

// Lowest returns the lowest-ranked card, breaking rank ties by suit order
// for determinism. Panics on an empty slice.
func Lowest(cards []domain.Card) domain.Card {
	if len(cards) == 0 {
		panic("bot: lowest of empty card set")
	}
	low := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < low.Rank || (c.Rank == low.Rank && c.Suit > low.Suit) {
			low = c
		}
	}
	return low
}

// Highest returns the highest-ranked card, breaking rank ties by suit
// order. Panics on an empty slice.
func Highest(cards []domain.Card) domain.Card {
	if len(cards) == 0 {
		panic("bot: highest of empty card set")
	}
	high := cards[0]
	for _, c := range cards[1:] {
		if c.Rank > high.Rank || (c.Rank == high.Rank && c.Suit < high.Suit) {
			high = c
		}
	}
	return high
}

// NonSpades filters out spades.
func NonSpades(cards []domain.Card) []domain.Card {
	var out []domain.Card
	for _, c := range cards {
		if c.Suit != domain.Spades {
			out = append(out, c)
		}
	}
	return out
}

// FindNonSpadeAce returns a non-spade ace from the cards, if one exists.
func FindNonSpadeAce(cards []domain.Card) (domain.Card, bool) {
	for _, c := range cards {
		if c.Rank == domain.Ace && c.Suit != domain.Spades {
			return c, true
		}
	}
	return domain.Card{}, false
}

// HighestOfLongestSuit returns the highest card of the longest non-empty
// suit among the given cards. Suit-priority order breaks length ties.
func HighestOfLongestSuit(cards []domain.Card) domain.Card {
	if len(cards) == 0 {
		panic("bot: longest suit of empty card set")
	}
	counts := domain.CountBySuit(cards)

	longest := cards[0].Suit
	for s := domain.Spades; s <= domain.Clubs; s++ {
		if counts[s] > counts[longest] {
			longest = s
		}
	}
	return Highest(domain.FilterBySuit(cards, longest))
}
