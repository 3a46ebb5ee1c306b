package domain

// Phase represents the lifecycle stage of a spades game.
type Phase string

const (
	// PhaseWaiting is the pre-game state before a game is set up.
	PhaseWaiting Phase = "waiting"
	// PhaseDealing is the window between game setup and the deal; blind nil
	// declarations are only legal here.
	PhaseDealing Phase = "dealing"
	// PhaseBidding is the state where seats declare bids in turn order.
	PhaseBidding Phase = "bidding"
	// PhasePlaying is the active trick-play state.
	PhasePlaying Phase = "playing"
	// PhaseRoundEnd is the state after a round is scored with no winner yet.
	PhaseRoundEnd Phase = "round_end"
	// PhaseGameOver is the terminal state after a team reaches the win score.
	PhaseGameOver Phase = "game_over"
)

// Suit is a card suit. The declaration order is the hand-sort priority.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Rank is a card rank with total numeric order 2..14 (Ace high).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch {
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	case r >= Two && r <= Ten:
		digits := [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10"}
		return digits[r-Two]
	default:
		return "?"
	}
}

// Card is a single immutable playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// ID returns the unique identifier for the card, e.g. "SA" or "H10".
func (c Card) ID() string {
	return c.Suit.String() + c.Rank.String()
}

func (c Card) String() string {
	return c.ID()
}

// Seat is one of the four fixed table positions, cyclically ordered.
// South is the human seat by convention; South/North and West/East
// form the two fixed partnerships.
type Seat int

const (
	South Seat = iota
	West
	North
	East
)

func (s Seat) String() string {
	switch s {
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	case East:
		return "east"
	default:
		return "?"
	}
}

// Next returns the seat to the left in turn order.
func (s Seat) Next() Seat {
	return (s + 1) % 4
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % 4
}

// Team returns the fixed partnership the seat belongs to.
func (s Seat) Team() Team {
	if s == South || s == North {
		return TeamNorthSouth
	}
	return TeamEastWest
}

// Team is a fixed unordered pair of opposite seats.
type Team int

const (
	TeamNorthSouth Team = iota
	TeamEastWest
)

func (t Team) String() string {
	if t == TeamNorthSouth {
		return "north_south"
	}
	return "east_west"
}

// BidKind tags the bid union: not yet bid, blind nil, nil, or standard.
type BidKind int

const (
	BidNone BidKind = iota
	BidBlindNil
	BidNil
	BidStandard
)

// Bid is a seat's declaration of expected tricks for the round.
type Bid struct {
	Kind   BidKind
	Tricks int // meaningful only for BidStandard
}

// StandardBid declares n expected tricks (1..13).
func StandardBid(n int) Bid {
	return Bid{Kind: BidStandard, Tricks: n}
}

// NilBid declares zero tricks for the nil bonus.
func NilBid() Bid {
	return Bid{Kind: BidNil}
}

// BlindNilBid declares nil before seeing the hand, for doubled stakes.
func BlindNilBid() Bid {
	return Bid{Kind: BidBlindNil}
}

// Placed reports whether the seat has bid at all.
func (b Bid) Placed() bool {
	return b.Kind != BidNone
}

// IsNil reports whether the bid is nil or blind nil.
func (b Bid) IsNil() bool {
	return b.Kind == BidNil || b.Kind == BidBlindNil
}

// Value returns the trick count the bid contributes to the team bid.
// Nil and blind nil contribute zero.
func (b Bid) Value() int {
	if b.Kind == BidStandard {
		return b.Tricks
	}
	return 0
}

// Player holds the state for one seat in the game.
type Player struct {
	Seat      Seat
	Name      string
	IsHuman   bool
	Hand      []Card
	Bid       Bid
	TricksWon int
}

// Play is a single card played by a seat within a trick.
type Play struct {
	Card Card
	Seat Seat
}

// Trick is one round of up to four plays. LeadSuit is fixed at the first
// play; Winner is assigned exactly once when the fourth play resolves.
type Trick struct {
	Plays    []Play
	LeadSuit Suit
	Winner   Seat
	Resolved bool
}

// Complete reports whether all four seats have played.
func (t *Trick) Complete() bool {
	return t != nil && len(t.Plays) == 4
}

// Round captures the per-round state replaced wholesale on each redeal.
type Round struct {
	Number       int
	Tricks       []Trick // completed tricks, winners resolved
	Current      *Trick
	SpadesBroken bool
	BidsComplete bool
}

// TeamScore is the cumulative score state for one partnership. RoundScore
// and RoundBags are informational deltas from the most recent round.
type TeamScore struct {
	Score      int
	Bags       int
	RoundScore int
	RoundBags  int
}

// Game holds the authoritative state for a single game instance. All
// entities are owned here; a new round replaces Round and hands wholesale.
type Game struct {
	ID         string
	Phase      Phase
	Difficulty string
	Players    [4]*Player
	Round      Round
	Scores     [2]TeamScore // indexed by Team
	Dealer     Seat
	Current    Seat // seat to act
	Winner     *Team
}

// PlayerAt returns the player occupying the given seat.
func (g *Game) PlayerAt(seat Seat) *Player {
	return g.Players[seat]
}
