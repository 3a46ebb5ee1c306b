package domain

import "fmt"

// ValidPlays returns the legal cards for the acting seat. For a non-empty
// hand the result is never empty.
//
// Leading: any card once spades are broken; otherwise non-spades only,
// unless the hand is all spades (forced spade lead). Following: lead-suit
// cards if any are held, otherwise the whole hand.
func ValidPlays(hand []Card, trick *Trick, spadesBroken bool, leading bool) []Card {
	if leading || trick == nil || len(trick.Plays) == 0 {
		if spadesBroken {
			return append([]Card{}, hand...)
		}
		nonSpades := make([]Card, 0, len(hand))
		for _, c := range hand {
			if c.Suit != Spades {
				nonSpades = append(nonSpades, c)
			}
		}
		if len(nonSpades) == 0 {
			// Only spades left; the lead is forced.
			return append([]Card{}, hand...)
		}
		return nonSpades
	}

	inSuit := FilterBySuit(hand, trick.LeadSuit)
	if len(inSuit) > 0 {
		return inSuit
	}
	return append([]Card{}, hand...)
}

// WouldBreakSpades reports whether playing card flips the spades-broken
// flag: spades are broken by the first spade played off-lead.
func WouldBreakSpades(card Card, trick *Trick, spadesBroken bool) bool {
	if spadesBroken || card.Suit != Spades {
		return false
	}
	return trick != nil && len(trick.Plays) > 0
}

// Beats reports whether candidate beats the current winning card given the
// trick's lead suit. A spade beats any non-spade; between spades the higher
// rank wins; otherwise only a higher card of the lead suit can win.
func Beats(candidate, winning Card, leadSuit Suit) bool {
	if candidate.Suit == Spades && winning.Suit != Spades {
		return true
	}
	if candidate.Suit == Spades && winning.Suit == Spades {
		return candidate.Rank > winning.Rank
	}
	if candidate.Suit != leadSuit {
		return false
	}
	if winning.Suit == Spades {
		return false
	}
	return candidate.Rank > winning.Rank
}

// WinningPlay returns the play currently winning the trick. Panics on an
// empty trick.
func WinningPlay(trick *Trick) Play {
	if trick == nil || len(trick.Plays) == 0 {
		panic("domain: winning play of empty trick")
	}
	winning := trick.Plays[0]
	for _, p := range trick.Plays[1:] {
		if Beats(p.Card, winning.Card, trick.LeadSuit) {
			winning = p
		}
	}
	return winning
}

// TrickWinner resolves a completed trick to the seat that won it: the
// highest spade if any spade was played, else the highest lead-suit card.
// A trick with other than four plays is a programmer error.
func TrickWinner(trick *Trick) Seat {
	if !trick.Complete() {
		panic(fmt.Sprintf("domain: trick winner requires 4 plays, have %d", len(trick.Plays)))
	}
	return WinningPlay(trick).Seat
}

// ValidBidValue reports whether v encodes a legal bid: -1 blind nil,
// 0 nil, or 1..13 standard. Blind nil eligibility (pre-deal only) is the
// caller's responsibility.
func ValidBidValue(v int) bool {
	return v >= -1 && v <= 13
}
