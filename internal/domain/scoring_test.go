package domain

import "testing"

func TestRoundScore(t *testing.T) {
	tests := []struct {
		name        string
		bid1        Bid
		tricks1     int
		bid2        Bid
		tricks2     int
		currentBags int
		wantPoints  int
		wantBags    int
		wantPenalty bool
	}{
		{
			name: "made bid exactly",
			bid1: StandardBid(4), tricks1: 4,
			bid2: StandardBid(3), tricks2: 3,
			wantPoints: 70, wantBags: 0,
		},
		{
			name: "made bid with overtricks",
			bid1: StandardBid(4), tricks1: 5,
			bid2: StandardBid(2), tricks2: 3,
			wantPoints: 62, wantBags: 2,
		},
		{
			name: "set team",
			bid1: StandardBid(5), tricks1: 3,
			bid2: StandardBid(3), tricks2: 2,
			wantPoints: -80, wantBags: 0,
		},
		{
			name: "nil success independent of partner set",
			bid1: NilBid(), tricks1: 0,
			bid2: StandardBid(6), tricks2: 4,
			wantPoints: 100 - 60, wantBags: 0,
		},
		{
			name: "nil failure",
			bid1: NilBid(), tricks1: 2,
			bid2: StandardBid(4), tricks2: 4,
			wantPoints: -100 + 40, wantBags: 0,
		},
		{
			name: "blind nil success",
			bid1: BlindNilBid(), tricks1: 0,
			bid2: StandardBid(5), tricks2: 5,
			wantPoints: 200 + 50, wantBags: 0,
		},
		{
			name: "blind nil failure",
			bid1: BlindNilBid(), tricks1: 1,
			bid2: StandardBid(5), tricks2: 5,
			wantPoints: -200 + 50, wantBags: 0,
		},
		{
			name: "nil tricks excluded from team total",
			bid1: NilBid(), tricks1: 3,
			bid2: StandardBid(4), tricks2: 3,
			// Partner alone holds 3 < 4: team is set despite 6 combined tricks.
			wantPoints: -100 - 40, wantBags: 0,
		},
		{
			name: "bag rollover",
			bid1: StandardBid(3), tricks1: 5,
			bid2: StandardBid(2), tricks2: 3,
			currentBags: 8,
			// 50 bid points + 3 overtricks - 100 penalty.
			wantPoints: -47, wantBags: 1, wantPenalty: true,
		},
		{
			name: "double nil",
			bid1: NilBid(), tricks1: 0,
			bid2: NilBid(), tricks2: 0,
			wantPoints: 200, wantBags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundScore(tt.bid1, tt.tricks1, tt.bid2, tt.tricks2, tt.currentBags)
			if got.Points != tt.wantPoints {
				t.Errorf("Points = %d, want %d", got.Points, tt.wantPoints)
			}
			if got.Bags != tt.wantBags {
				t.Errorf("Bags = %d, want %d", got.Bags, tt.wantBags)
			}
			if got.BagPenalty != tt.wantPenalty {
				t.Errorf("BagPenalty = %v, want %v", got.BagPenalty, tt.wantPenalty)
			}
		})
	}
}

func TestRoundScoreDeterministic(t *testing.T) {
	a := RoundScore(StandardBid(4), 6, NilBid(), 1, 7)
	b := RoundScore(StandardBid(4), 6, NilBid(), 1, 7)
	if a != b {
		t.Fatalf("RoundScore not deterministic: %+v vs %+v", a, b)
	}
}

func TestApplyRound(t *testing.T) {
	ts := TeamScore{Score: 120, Bags: 8}
	res := RoundScore(StandardBid(3), 5, StandardBid(2), 3, ts.Bags)
	ApplyRound(&ts, res)

	if ts.Score != 120-47 {
		t.Fatalf("Score = %d, want %d", ts.Score, 120-47)
	}
	if ts.Bags != 1 {
		t.Fatalf("Bags = %d, want 1", ts.Bags)
	}
	if ts.RoundScore != -47 || ts.RoundBags != 3 {
		t.Fatalf("round deltas = (%d, %d), want (-47, 3)", ts.RoundScore, ts.RoundBags)
	}
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name string
		ns   int
		ew   int
		want *Team
	}{
		{name: "no winner", ns: 480, ew: 320, want: nil},
		{name: "north south wins", ns: 510, ew: 320, want: teamPtr(TeamNorthSouth)},
		{name: "east west wins", ns: 130, ew: 500, want: teamPtr(TeamEastWest)},
		{name: "both over, higher wins", ns: 520, ew: 540, want: teamPtr(TeamEastWest)},
		{name: "exact tie over target continues", ns: 520, ew: 520, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckWinner(TeamScore{Score: tt.ns}, TeamScore{Score: tt.ew}, DefaultWinScore)
			switch {
			case got == nil && tt.want != nil:
				t.Fatalf("CheckWinner() = nil, want %v", *tt.want)
			case got != nil && tt.want == nil:
				t.Fatalf("CheckWinner() = %v, want nil", *got)
			case got != nil && tt.want != nil && *got != *tt.want:
				t.Fatalf("CheckWinner() = %v, want %v", *got, *tt.want)
			}
		})
	}
}
