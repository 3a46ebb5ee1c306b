package bot

import (
	"spades/internal/domain"
)

// Level identifies a bot difficulty tier.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// BidContext carries the state a strategy may consult when bidding.
type BidContext struct {
	Hand       []domain.Card
	PartnerBid domain.Bid // Kind is BidNone when the partner has not bid
}

// PlayContext carries the state a strategy may consult when playing.
type PlayContext struct {
	Seat         domain.Seat
	Hand         []domain.Card
	Trick        *domain.Trick
	SpadesBroken bool
	Leading      bool
	Bid          domain.Bid
	TricksWon    int
}

// Brain is the interface all difficulty tiers implement. Invoking either
// method with an empty hand is a programmer error and panics.
type Brain interface {
	Bid(ctx BidContext) domain.Bid
	SelectCard(ctx PlayContext) domain.Card
}

func mustHaveCards(hand []domain.Card) {
	if len(hand) == 0 {
		panic("bot: decision requested for empty hand")
	}
}

func isLead(ctx PlayContext) bool {
	return ctx.Leading || ctx.Trick == nil || len(ctx.Trick.Plays) == 0
}

func legalPlays(ctx PlayContext) []domain.Card {
	mustHaveCards(ctx.Hand)
	return domain.ValidPlays(ctx.Hand, ctx.Trick, ctx.SpadesBroken, ctx.Leading)
}
