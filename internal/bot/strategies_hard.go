package bot

import (
	"math/rand"

	"spades/internal/bot/internal"
	"spades/internal/domain"
)

// HardBot balances the team bid, occasionally declares nil on a qualifying
// hand, and plays to its bid: chasing tricks cheaply while short, ducking
// and conserving winners once satisfied. Its play logic is deterministic
// and shared with the hint function.
type HardBot struct {
	rng *rand.Rand
}

func (b *HardBot) Bid(ctx BidContext) domain.Bid {
	mustHaveCards(ctx.Hand)
	if nilCandidate(ctx.Hand) && b.rng.Float64() < hardTuning.NilChance {
		return domain.NilBid()
	}
	return domain.StandardBid(hardBidTricks(ctx))
}

func (b *HardBot) SelectCard(ctx PlayContext) domain.Card {
	return hardPlay(ctx)
}

// nilCandidate reports whether the hand qualifies for a nil declaration:
// a minimal trick estimate, short spades, and no high cards.
func nilCandidate(hand []domain.Card) bool {
	return internal.EstimateMinTricks(hand) <= hardTuning.NilEstimateMax &&
		domain.CountSpades(hand) <= hardTuning.NilSpadeMax &&
		domain.CountHighCards(hand) == 0
}

// hardBidTricks is the rounded estimate rebalanced against the combined
// team total: shaved when the total runs high, boosted toward the low-side
// target (never past MaxBoostedBid) when it runs low.
func hardBidTricks(ctx BidContext) int {
	n := internal.RoundedBid(ctx.Hand)
	if !ctx.PartnerBid.Placed() {
		// Nothing to balance against yet.
		return internal.ClampBid(n)
	}
	total := n + ctx.PartnerBid.Value()

	switch {
	case total > hardTuning.TeamTotalHigh:
		n -= hardTuning.BidReduction
	case total < hardTuning.TeamTotalLow:
		boosted := n + (hardTuning.TeamTotalLow - total)
		if boosted > hardTuning.MaxBoostedBid {
			boosted = hardTuning.MaxBoostedBid
		}
		if boosted > n {
			n = boosted
		}
	}
	return internal.ClampBid(n)
}

func hardPlay(ctx PlayContext) domain.Card {
	legal := legalPlays(ctx)
	tricksNeeded := ctx.Bid.Value() - ctx.TricksWon

	if isLead(ctx) {
		if tricksNeeded > 0 {
			if ace, ok := internal.FindNonSpadeAce(legal); ok {
				return ace
			}
			return internal.HighestOfLongestSuit(legal)
		}
		return internal.Lowest(legal)
	}

	if internal.PartnerWinning(ctx.Trick, ctx.Seat) {
		return internal.Lowest(legal)
	}
	winning := internal.WinningPlays(legal, ctx.Trick)
	if tricksNeeded > 0 && len(winning) > 0 {
		return internal.Lowest(winning)
	}
	return internal.Lowest(legal)
}
