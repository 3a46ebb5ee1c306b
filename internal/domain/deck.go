package domain

import (
	"math/rand"
	"sort"
)

// NewDeck returns an ordered 52-card deck, one card per suit/rank pair.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := Spades; s <= Clubs; s++ {
		for r := Two; r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle returns a Fisher-Yates shuffled copy of the given deck using the
// provided random source. The input is not mutated.
func Shuffle(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal shuffles a fresh deck and deals it round-robin, one card per seat in
// fixed seat order, until exhausted. Each hand is sorted for display.
func Deal(rng *rand.Rand) [4][]Card {
	deck := Shuffle(rng, NewDeck())

	var hands [4][]Card
	for i := range hands {
		hands[i] = make([]Card, 0, len(deck)/4)
	}
	for i, c := range deck {
		seat := Seat(i % 4)
		hands[seat] = append(hands[seat], c)
	}
	for i := range hands {
		SortHand(hands[i])
	}
	return hands
}

// SortHand orders a hand by suit priority (spades, hearts, diamonds, clubs)
// then rank descending.
func SortHand(hand []Card) {
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return hand[i].Suit < hand[j].Suit
		}
		return hand[i].Rank > hand[j].Rank
	})
}

// CountBySuit returns the number of cards held in each suit.
func CountBySuit(hand []Card) map[Suit]int {
	counts := make(map[Suit]int, 4)
	for _, c := range hand {
		counts[c.Suit]++
	}
	return counts
}

// FilterBySuit returns the cards of the given suit, in hand order.
func FilterBySuit(hand []Card, suit Suit) []Card {
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// CountSpades returns the number of spades held.
func CountSpades(hand []Card) int {
	return len(FilterBySuit(hand, Spades))
}

// CountHighCards returns the number of aces, kings and queens held.
func CountHighCards(hand []Card) int {
	n := 0
	for _, c := range hand {
		if c.Rank >= Queen {
			n++
		}
	}
	return n
}

// ContainsCard reports whether the hand holds the given card.
func ContainsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveCard returns the hand with the first occurrence of card removed.
func RemoveCard(hand []Card, card Card) []Card {
	out := make([]Card, 0, len(hand))
	removed := false
	for _, c := range hand {
		if !removed && c == card {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}
