package app

import "spades/internal/domain"

// EventKind identifies emitted game events for the driving layer.
type EventKind string

const (
	EventGameCreated      EventKind = "game_created"
	EventBlindNilDeclared EventKind = "blind_nil_declared"
	EventHandDealt        EventKind = "hand_dealt"
	EventBidPlaced        EventKind = "bid_placed"
	EventBiddingComplete  EventKind = "bidding_complete"
	EventCardPlayed       EventKind = "card_played"
	EventSpadesBroken     EventKind = "spades_broken"
	EventTrickWon         EventKind = "trick_won"
	EventRoundScored      EventKind = "round_scored"
	EventNewRound         EventKind = "new_round"
	EventGameEnded        EventKind = "game_ended"
)

// Event is an app-level event describing a state change.
type Event struct {
	Kind    EventKind
	Payload any
}

type GameCreatedPayload struct {
	GameID     string
	Difficulty string
}

type BlindNilDeclaredPayload struct {
	Seat domain.Seat
}

type HandDealtPayload struct {
	Seat domain.Seat
	Hand []domain.Card
}

type BidPlacedPayload struct {
	Seat domain.Seat
	Bid  domain.Bid
}

type BiddingCompletePayload struct {
	Lead domain.Seat
}

type CardPlayedPayload struct {
	Seat domain.Seat
	Card domain.Card
	Next domain.Seat
}

type TrickWonPayload struct {
	Winner domain.Seat
	Trick  domain.Trick
}

type RoundScoredPayload struct {
	Round      int
	NorthSouth domain.RoundResult
	EastWest   domain.RoundResult
}

type NewRoundPayload struct {
	Round  int
	Dealer domain.Seat
}

type GameEndedPayload struct {
	Winner domain.Team
}
