package app

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"spades/internal/bot"
	"spades/internal/config"
	"spades/internal/domain"
)

// Service contains the spades use-cases operating on game state. All
// operations are synchronous transforms of a single Game instance; the
// caller is responsible for serializing turns.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrWrongPhase   = errors.New("operation not valid in current phase")
	ErrOutOfTurn    = errors.New("not this seat's turn")
	ErrInvalidBid   = errors.New("invalid bid")
	ErrInvalidPlay  = errors.New("card is not a legal play")
	ErrNotBotSeat   = errors.New("current seat is not a bot")
	ErrNotHumanSeat = errors.New("current seat is not human")
	ErrStaleAction  = errors.New("action targets a stale game")
)

// NewGame allocates a fresh game against three bots of the given
// difficulty. The human occupies the south seat; the nominal dealer starts
// at east so the human acts first. The game is left in the dealing phase
// so blind nil may still be declared before DealRound.
func (s *Service) NewGame(difficulty bot.Level) (*domain.Game, []Event, error) {
	if _, err := bot.ParseLevel(string(difficulty)); err != nil {
		return nil, nil, err
	}

	game := &domain.Game{
		ID:         uuid.NewString(),
		Phase:      domain.PhaseDealing,
		Difficulty: string(difficulty),
		Dealer:     domain.East,
		Round:      domain.Round{Number: 1},
	}

	game.Players[domain.South] = &domain.Player{Seat: domain.South, Name: "You", IsHuman: true}
	botIdx := 0
	for seat := domain.West; seat <= domain.East; seat++ {
		identity := bot.GetBotIdentity(botIdx)
		game.Players[seat] = &domain.Player{Seat: seat, Name: identity.Name}
		botIdx++
	}

	log.Info().
		Str("game", game.ID).
		Str("difficulty", string(difficulty)).
		Msg("game created")

	events := []Event{{
		Kind:    EventGameCreated,
		Payload: GameCreatedPayload{GameID: game.ID, Difficulty: string(difficulty)},
	}}
	return game, events, nil
}

// DeclareBlindNil records a blind nil declaration for the seat. Only legal
// before the deal, while the seat has not seen its hand.
func (s *Service) DeclareBlindNil(game *domain.Game, seat domain.Seat) ([]Event, error) {
	if game.Phase != domain.PhaseDealing {
		return nil, ErrWrongPhase
	}
	player := game.PlayerAt(seat)
	if player.Bid.Placed() {
		return nil, ErrInvalidBid
	}
	player.Bid = domain.BlindNilBid()

	return []Event{{
		Kind:    EventBlindNilDeclared,
		Payload: BlindNilDeclaredPayload{Seat: seat},
	}}, nil
}

// DealRound deals fresh hands and transitions to bidding, with the seat
// left of the dealer first to act.
func (s *Service) DealRound(game *domain.Game) ([]Event, error) {
	if game.Phase != domain.PhaseDealing {
		return nil, ErrWrongPhase
	}

	hands := domain.Deal(s.rng)
	events := make([]Event, 0, 4)
	for seat := domain.South; seat <= domain.East; seat++ {
		player := game.PlayerAt(seat)
		player.Hand = hands[seat]
		player.TricksWon = 0
		events = append(events, Event{
			Kind:    EventHandDealt,
			Payload: HandDealtPayload{Seat: seat, Hand: player.Hand},
		})
	}

	game.Phase = domain.PhaseBidding
	game.Current = game.Dealer.Next()
	s.skipPlacedBids(game)
	// All four seats may already hold pre-deal blind nils.
	events = append(events, closeBidding(game)...)
	return events, nil
}

// PlaceBid records a bid for the seat whose turn it is. Blind nil must be
// declared pre-deal and is rejected here.
func (s *Service) PlaceBid(game *domain.Game, seat domain.Seat, bid domain.Bid) ([]Event, error) {
	if game.Phase != domain.PhaseBidding {
		return nil, ErrWrongPhase
	}
	if game.Current != seat {
		return nil, ErrOutOfTurn
	}
	player := game.PlayerAt(seat)
	if player.Bid.Placed() {
		return nil, ErrInvalidBid
	}

	switch bid.Kind {
	case domain.BidNil:
	case domain.BidStandard:
		if bid.Tricks < 1 || bid.Tricks > 13 {
			return nil, ErrInvalidBid
		}
	default:
		return nil, ErrInvalidBid
	}
	player.Bid = bid

	events := []Event{{
		Kind:    EventBidPlaced,
		Payload: BidPlacedPayload{Seat: seat, Bid: bid},
	}}

	game.Current = game.Current.Next()
	s.skipPlacedBids(game)
	events = append(events, closeBidding(game)...)
	return events, nil
}

// closeBidding transitions to playing once every seat holds a bid, with
// the seat left of the dealer on lead.
func closeBidding(game *domain.Game) []Event {
	if !allBidsPlaced(game) {
		return nil
	}
	game.Round.BidsComplete = true
	game.Phase = domain.PhasePlaying
	game.Current = game.Dealer.Next()
	return []Event{{
		Kind:    EventBiddingComplete,
		Payload: BiddingCompletePayload{Lead: game.Current},
	}}
}

// PlayCard validates and applies a card play for the seat whose turn it
// is, resolving the trick and the round when they complete.
func (s *Service) PlayCard(game *domain.Game, seat domain.Seat, card domain.Card) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrWrongPhase
	}
	if game.Current != seat {
		return nil, ErrOutOfTurn
	}
	player := game.PlayerAt(seat)

	trick := game.Round.Current
	leading := trick == nil || len(trick.Plays) == 0
	legal := domain.ValidPlays(player.Hand, trick, game.Round.SpadesBroken, leading)
	if !domain.ContainsCard(legal, card) {
		return nil, ErrInvalidPlay
	}

	var events []Event
	if domain.WouldBreakSpades(card, trick, game.Round.SpadesBroken) {
		game.Round.SpadesBroken = true
		events = append(events, Event{Kind: EventSpadesBroken})
	}

	if trick == nil {
		trick = &domain.Trick{}
		game.Round.Current = trick
	}
	if len(trick.Plays) == 0 {
		trick.LeadSuit = card.Suit
	}
	trick.Plays = append(trick.Plays, domain.Play{Card: card, Seat: seat})
	player.Hand = domain.RemoveCard(player.Hand, card)

	if !trick.Complete() {
		game.Current = game.Current.Next()
		events = append(events, Event{
			Kind:    EventCardPlayed,
			Payload: CardPlayedPayload{Seat: seat, Card: card, Next: game.Current},
		})
		return events, nil
	}

	winner := domain.TrickWinner(trick)
	trick.Winner = winner
	trick.Resolved = true
	game.PlayerAt(winner).TricksWon++
	game.Round.Tricks = append(game.Round.Tricks, *trick)
	game.Round.Current = nil
	game.Current = winner

	events = append(events,
		Event{Kind: EventCardPlayed, Payload: CardPlayedPayload{Seat: seat, Card: card, Next: winner}},
		Event{Kind: EventTrickWon, Payload: TrickWonPayload{Winner: winner, Trick: *trick}},
	)

	if len(game.Round.Tricks) == 13 {
		events = append(events, s.scoreRound(game)...)
	}
	return events, nil
}

// NextRound advances a scored game into the next round's pre-deal window.
func (s *Service) NextRound(game *domain.Game) ([]Event, error) {
	if game.Phase != domain.PhaseRoundEnd {
		return nil, ErrWrongPhase
	}

	game.Round = domain.Round{Number: game.Round.Number + 1}
	game.Dealer = game.Dealer.Next()
	for _, p := range game.Players {
		p.Hand = nil
		p.Bid = domain.Bid{}
		p.TricksWon = 0
	}
	game.Phase = domain.PhaseDealing

	return []Event{{
		Kind:    EventNewRound,
		Payload: NewRoundPayload{Round: game.Round.Number, Dealer: game.Dealer},
	}}, nil
}

// BotTurn computes and applies the current bot seat's bid or play. The
// gameID guards externally scheduled actions against a game that has been
// replaced in the meantime.
func (s *Service) BotTurn(game *domain.Game, gameID string) ([]Event, error) {
	if game.ID != gameID {
		return nil, ErrStaleAction
	}
	player := game.PlayerAt(game.Current)
	if player.IsHuman {
		return nil, ErrNotBotSeat
	}

	brain, err := bot.NewBrain(bot.Level(game.Difficulty), s.rng)
	if err != nil {
		return nil, err
	}

	switch game.Phase {
	case domain.PhaseBidding:
		bid := brain.Bid(bidContext(game, player.Seat))
		return s.PlaceBid(game, player.Seat, bid)
	case domain.PhasePlaying:
		card := brain.SelectCard(playContext(game, player.Seat))
		return s.PlayCard(game, player.Seat, card)
	default:
		return nil, ErrWrongPhase
	}
}

// HintBid suggests a bid for the current human seat.
func (s *Service) HintBid(game *domain.Game) (domain.Bid, error) {
	if game.Phase != domain.PhaseBidding {
		return domain.Bid{}, ErrWrongPhase
	}
	if !game.PlayerAt(game.Current).IsHuman {
		return domain.Bid{}, ErrNotHumanSeat
	}
	return bot.HintBid(bidContext(game, game.Current)), nil
}

// HintCard suggests a card for the current human seat.
func (s *Service) HintCard(game *domain.Game) (domain.Card, error) {
	if game.Phase != domain.PhasePlaying {
		return domain.Card{}, ErrWrongPhase
	}
	if !game.PlayerAt(game.Current).IsHuman {
		return domain.Card{}, ErrNotHumanSeat
	}
	return bot.HintCard(playContext(game, game.Current)), nil
}

func (s *Service) scoreRound(game *domain.Game) []Event {
	results := [2]domain.RoundResult{}
	for _, team := range []domain.Team{domain.TeamNorthSouth, domain.TeamEastWest} {
		var seats [2]*domain.Player
		if team == domain.TeamNorthSouth {
			seats = [2]*domain.Player{game.PlayerAt(domain.South), game.PlayerAt(domain.North)}
		} else {
			seats = [2]*domain.Player{game.PlayerAt(domain.West), game.PlayerAt(domain.East)}
		}
		res := domain.RoundScore(
			seats[0].Bid, seats[0].TricksWon,
			seats[1].Bid, seats[1].TricksWon,
			game.Scores[team].Bags,
		)
		domain.ApplyRound(&game.Scores[team], res)
		results[team] = res
	}

	events := []Event{{
		Kind: EventRoundScored,
		Payload: RoundScoredPayload{
			Round:      game.Round.Number,
			NorthSouth: results[domain.TeamNorthSouth],
			EastWest:   results[domain.TeamEastWest],
		},
	}}

	log.Info().
		Str("game", game.ID).
		Int("round", game.Round.Number).
		Int("ns_points", results[domain.TeamNorthSouth].Points).
		Int("ew_points", results[domain.TeamEastWest].Points).
		Msg("round scored")

	winner := domain.CheckWinner(
		game.Scores[domain.TeamNorthSouth],
		game.Scores[domain.TeamEastWest],
		config.WinScore(),
	)
	if winner != nil {
		game.Winner = winner
		game.Phase = domain.PhaseGameOver
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{Winner: *winner},
		})
		log.Info().Str("game", game.ID).Str("winner", winner.String()).Msg("game ended")
	} else {
		game.Phase = domain.PhaseRoundEnd
	}
	return events
}

// skipPlacedBids advances past seats that already hold a bid, such as a
// pre-deal blind nil.
func (s *Service) skipPlacedBids(game *domain.Game) {
	for i := 0; i < 4 && game.PlayerAt(game.Current).Bid.Placed(); i++ {
		game.Current = game.Current.Next()
	}
}

func allBidsPlaced(game *domain.Game) bool {
	for _, p := range game.Players {
		if !p.Bid.Placed() {
			return false
		}
	}
	return true
}

func bidContext(game *domain.Game, seat domain.Seat) bot.BidContext {
	return bot.BidContext{
		Hand:       game.PlayerAt(seat).Hand,
		PartnerBid: game.PlayerAt(seat.Partner()).Bid,
	}
}

func playContext(game *domain.Game, seat domain.Seat) bot.PlayContext {
	player := game.PlayerAt(seat)
	trick := game.Round.Current
	return bot.PlayContext{
		Seat:         seat,
		Hand:         player.Hand,
		Trick:        trick,
		SpadesBroken: game.Round.SpadesBroken,
		Leading:      trick == nil || len(trick.Plays) == 0,
		Bid:          player.Bid,
		TricksWon:    player.TricksWon,
	}
}
