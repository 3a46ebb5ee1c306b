package bot

import (
	"math/rand"

	"spades/internal/bot/internal"
	"spades/internal/domain"
)

// MediumBot bids its rounded estimate with a team-total sanity check,
// prefers high non-spade leads, and takes tricks with its cheapest winner.
type MediumBot struct {
	rng *rand.Rand
}

func (b *MediumBot) Bid(ctx BidContext) domain.Bid {
	mustHaveCards(ctx.Hand)
	n := internal.RoundedBid(ctx.Hand)
	if n+ctx.PartnerBid.Value() > mediumTuning.TeamTotalHigh {
		n -= mediumTuning.BidReduction
	}
	return domain.StandardBid(internal.ClampBid(n))
}

func (b *MediumBot) SelectCard(ctx PlayContext) domain.Card {
	legal := legalPlays(ctx)

	if isLead(ctx) {
		nonSpades := internal.NonSpades(legal)
		if len(nonSpades) == 0 {
			// Only spades are playable.
			return internal.Lowest(legal)
		}
		if b.rng.Float64() < mediumTuning.HighLeadChance {
			return internal.Highest(nonSpades)
		}
		return nonSpades[b.rng.Intn(len(nonSpades))]
	}

	if winning := internal.WinningPlays(legal, ctx.Trick); len(winning) > 0 {
		return internal.Lowest(winning)
	}
	return internal.Lowest(legal)
}
