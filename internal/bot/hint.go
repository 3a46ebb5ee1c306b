package bot

import "spades/internal/domain"

// HintCard suggests a card for the given state using the hard tier's play
// logic. The suggestion is deterministic for identical inputs.
func HintCard(ctx PlayContext) domain.Card {
	return hardPlay(ctx)
}

// HintBid suggests a bid using the hard tier's logic with the randomness
// removed: nil is suggested whenever the hand qualifies.
func HintBid(ctx BidContext) domain.Bid {
	mustHaveCards(ctx.Hand)
	if nilCandidate(ctx.Hand) {
		return domain.NilBid()
	}
	return domain.StandardBid(hardBidTricks(ctx))
}
