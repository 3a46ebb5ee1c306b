package domain

// Scoring constants for standard partnership spades.
const (
	PointsPerBidTrick = 10
	NilBonus          = 100
	BlindNilBonus     = 200
	BagThreshold      = 10
	BagPenaltyPoints  = 100
	DefaultWinScore   = 500
)

// RoundResult is the outcome of scoring one round for a single team.
type RoundResult struct {
	Points     int  // total signed points for the round
	Bags       int  // new cumulative bag count after any rollover
	BagPenalty bool // true if the 10-bag penalty applied this round

	// Breakdown details.
	NilPoints  int
	BidPoints  int
	TeamBid    int
	TeamTricks int
	Overtricks int
	Made       bool
}

// RoundScore computes a team's score for a finished round. Nil and blind
// nil bidders are scored independently; their bids and tricks are excluded
// from the team bid evaluation. Bags roll over at the threshold exactly
// once per round.
func RoundScore(bid1 Bid, tricks1 int, bid2 Bid, tricks2 int, currentBags int) RoundResult {
	res := RoundResult{}

	res.NilPoints += nilScore(bid1, tricks1)
	res.NilPoints += nilScore(bid2, tricks2)

	res.TeamBid = bid1.Value() + bid2.Value()
	if !bid1.IsNil() {
		res.TeamTricks += tricks1
	}
	if !bid2.IsNil() {
		res.TeamTricks += tricks2
	}

	if res.TeamBid > 0 {
		if res.TeamTricks >= res.TeamBid {
			res.Made = true
			res.Overtricks = res.TeamTricks - res.TeamBid
			res.BidPoints = res.TeamBid*PointsPerBidTrick + res.Overtricks
		} else {
			res.BidPoints = -res.TeamBid * PointsPerBidTrick
		}
	}

	res.Bags = currentBags + res.Overtricks
	res.Points = res.NilPoints + res.BidPoints
	if res.Bags >= BagThreshold {
		res.Bags -= BagThreshold
		res.Points -= BagPenaltyPoints
		res.BagPenalty = true
	}

	return res
}

func nilScore(bid Bid, tricks int) int {
	switch bid.Kind {
	case BidNil:
		if tricks == 0 {
			return NilBonus
		}
		return -NilBonus
	case BidBlindNil:
		if tricks == 0 {
			return BlindNilBonus
		}
		return -BlindNilBonus
	default:
		return 0
	}
}

// ApplyRound folds a round result into the cumulative team score and
// records the informational per-round deltas.
func ApplyRound(ts *TeamScore, res RoundResult) {
	ts.Score += res.Points
	ts.Bags = res.Bags
	ts.RoundScore = res.Points
	ts.RoundBags = res.Overtricks
}

// CheckWinner returns the winning team once a team reaches the target
// score. When both teams reach it in the same round the strictly higher
// score wins; an exact tie at or above the target is not a win and the
// game continues.
func CheckWinner(ns, ew TeamScore, target int) *Team {
	nsWon := ns.Score >= target
	ewWon := ew.Score >= target

	switch {
	case nsWon && ewWon:
		if ns.Score > ew.Score {
			return teamPtr(TeamNorthSouth)
		}
		if ew.Score > ns.Score {
			return teamPtr(TeamEastWest)
		}
		return nil
	case nsWon:
		return teamPtr(TeamNorthSouth)
	case ewWon:
		return teamPtr(TeamEastWest)
	default:
		return nil
	}
}

func teamPtr(t Team) *Team {
	return &t
}
