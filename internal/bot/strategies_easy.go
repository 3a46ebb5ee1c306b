package bot

import (
	"math/rand"

	"spades/internal/bot/internal"
	"spades/internal/domain"
)

// EasyBot bids loosely and mostly plays at random, occasionally dumping
// its lowest legal card.
type EasyBot struct {
	rng *rand.Rand
}

func (b *EasyBot) Bid(ctx BidContext) domain.Bid {
	mustHaveCards(ctx.Hand)
	// Adjusted estimate plus a uniform offset in {-1, 0, 1}.
	n := internal.FlooredBid(ctx.Hand) + b.rng.Intn(3) - 1
	return domain.StandardBid(internal.ClampBid(n))
}

func (b *EasyBot) SelectCard(ctx PlayContext) domain.Card {
	legal := legalPlays(ctx)
	if b.rng.Float64() < easyTuning.RandomPlayChance {
		return legal[b.rng.Intn(len(legal))]
	}
	return internal.Lowest(legal)
}
