package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}

	seen := make(map[string]bool)
	for _, c := range deck {
		if seen[c.ID()] {
			t.Fatalf("duplicate card found: %s", c.ID())
		}
		seen[c.ID()] = true
		if c.Rank < Two || c.Rank > Ace {
			t.Fatalf("rank out of range: %d", c.Rank)
		}
		if c.Suit < Spades || c.Suit > Clubs {
			t.Fatalf("suit out of range: %d", c.Suit)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	deck := NewDeck()
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		shuffled := Shuffle(rng, deck)

		if len(shuffled) != len(deck) {
			t.Fatalf("seed %d: shuffled size = %d, want %d", seed, len(shuffled), len(deck))
		}
		seen := make(map[string]bool, len(shuffled))
		for _, c := range shuffled {
			if seen[c.ID()] {
				t.Fatalf("seed %d: duplicate card after shuffle: %s", seed, c.ID())
			}
			seen[c.ID()] = true
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	deck := NewDeck()
	orig := append([]Card{}, deck...)
	Shuffle(rand.New(rand.NewSource(1)), deck)

	for i := range deck {
		if deck[i] != orig[i] {
			t.Fatalf("input deck mutated at index %d", i)
		}
	}
}

func TestDeal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	hands := Deal(rng)

	seen := make(map[string]bool)
	for seat, hand := range hands {
		if len(hand) != 13 {
			t.Fatalf("seat %d hand size = %d, want 13", seat, len(hand))
		}
		for _, c := range hand {
			if seen[c.ID()] {
				t.Fatalf("card %s dealt twice", c.ID())
			}
			seen[c.ID()] = true
		}
	}
	if len(seen) != 52 {
		t.Fatalf("dealt %d unique cards, want 52", len(seen))
	}
}

func TestDealSortsHands(t *testing.T) {
	hands := Deal(rand.New(rand.NewSource(7)))
	for seat, hand := range hands {
		for i := 1; i < len(hand); i++ {
			prev, cur := hand[i-1], hand[i]
			if prev.Suit > cur.Suit {
				t.Fatalf("seat %d: suit order broken at %d: %s before %s", seat, i, prev, cur)
			}
			if prev.Suit == cur.Suit && prev.Rank < cur.Rank {
				t.Fatalf("seat %d: rank order broken at %d: %s before %s", seat, i, prev, cur)
			}
		}
	}
}

func TestHandAnalysis(t *testing.T) {
	hand := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: Queen},
		{Suit: Hearts, Rank: King},
		{Suit: Hearts, Rank: Two},
		{Suit: Clubs, Rank: Nine},
	}

	counts := CountBySuit(hand)
	if counts[Spades] != 2 || counts[Hearts] != 2 || counts[Clubs] != 1 || counts[Diamonds] != 0 {
		t.Fatalf("unexpected suit counts: %v", counts)
	}
	if got := CountSpades(hand); got != 2 {
		t.Fatalf("CountSpades() = %d, want 2", got)
	}
	if got := CountHighCards(hand); got != 3 {
		t.Fatalf("CountHighCards() = %d, want 3", got)
	}

	hearts := FilterBySuit(hand, Hearts)
	if len(hearts) != 2 || hearts[0].Rank != King || hearts[1].Rank != Two {
		t.Fatalf("unexpected hearts filter: %v", hearts)
	}
}

func TestRemoveCard(t *testing.T) {
	hand := []Card{
		{Suit: Spades, Rank: Two},
		{Suit: Hearts, Rank: Ace},
		{Suit: Diamonds, Rank: Five},
	}

	got := RemoveCard(hand, Card{Suit: Hearts, Rank: Ace})
	if len(got) != 2 {
		t.Fatalf("hand size after removal = %d, want 2", len(got))
	}
	if ContainsCard(got, Card{Suit: Hearts, Rank: Ace}) {
		t.Fatal("removed card still present")
	}

	// Removing an absent card leaves the hand intact.
	got = RemoveCard(hand, Card{Suit: Clubs, Rank: Ace})
	if len(got) != 3 {
		t.Fatalf("hand size = %d, want 3", len(got))
	}
}
