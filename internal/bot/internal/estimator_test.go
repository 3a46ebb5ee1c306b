package internal

import (
	"testing"

	"spades/internal/domain"
)

func card(s domain.Suit, r domain.Rank) domain.Card {
	return domain.Card{Suit: s, Rank: r}
}

func TestHandStrength(t *testing.T) {
	tests := []struct {
		name string
		hand []domain.Card
		want float64
	}{
		{
			name: "single ace",
			hand: []domain.Card{card(domain.Hearts, domain.Ace)},
			want: 1.0,
		},
		{
			name: "protected king",
			hand: []domain.Card{
				card(domain.Hearts, domain.King),
				card(domain.Hearts, domain.Two),
			},
			want: 0.7,
		},
		{
			name: "unprotected king",
			hand: []domain.Card{
				card(domain.Hearts, domain.King),
				card(domain.Clubs, domain.Two),
			},
			want: 0.0,
		},
		{
			name: "high spade queen",
			hand: []domain.Card{card(domain.Spades, domain.Queen)},
			want: 0.3,
		},
		{
			name: "spade ace counts as ace and high spade",
			hand: []domain.Card{card(domain.Spades, domain.Ace)},
			want: 1.3,
		},
		{
			name: "low spade contributes nothing",
			hand: []domain.Card{card(domain.Spades, domain.Four)},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HandStrength(tt.hand)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("HandStrength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateMinTricksFloors(t *testing.T) {
	// Two aces + protected king = 2.7 -> 2.
	hand := []domain.Card{
		card(domain.Hearts, domain.Ace),
		card(domain.Diamonds, domain.Ace),
		card(domain.Clubs, domain.King),
		card(domain.Clubs, domain.Three),
	}
	if got := EstimateMinTricks(hand); got != 2 {
		t.Fatalf("EstimateMinTricks() = %d, want 2", got)
	}
}

func TestAdjustedStrengthSpadeLength(t *testing.T) {
	base := []domain.Card{
		card(domain.Spades, domain.Two),
		card(domain.Spades, domain.Three),
		card(domain.Spades, domain.Four),
		card(domain.Hearts, domain.Five),
		card(domain.Hearts, domain.Six),
		card(domain.Diamonds, domain.Five),
		card(domain.Diamonds, domain.Six),
		card(domain.Clubs, domain.Five),
		card(domain.Clubs, domain.Six),
	}
	three := AdjustedStrength(base)

	four := AdjustedStrength(append([]domain.Card{card(domain.Spades, domain.Five)}, base...))
	if diff := four - three - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("fourth spade should add exactly +1, got %v", four-three)
	}
}

func TestAdjustedStrengthShape(t *testing.T) {
	// Void in clubs (+0.5), singleton diamond (+0.3), no honors.
	hand := []domain.Card{
		card(domain.Spades, domain.Two),
		card(domain.Spades, domain.Three),
		card(domain.Hearts, domain.Four),
		card(domain.Hearts, domain.Five),
		card(domain.Diamonds, domain.Six),
	}
	if got, want := AdjustedStrength(hand), 0.8; got-want > 1e-9 || got-want < -1e-9 {
		t.Fatalf("AdjustedStrength() = %v, want %v", got, want)
	}
}

func TestClampBid(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {7, 7}, {13, 13}, {20, 13},
	}
	for _, tt := range tests {
		if got := ClampBid(tt.in); got != tt.want {
			t.Errorf("ClampBid(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
