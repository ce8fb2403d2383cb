package main

import (
	"strings"
	"testing"
)

func TestSimulateBallSkillDifferentialShapesBoundaries(t *testing.T) {
	strongBat := &Player{Batting: 80, Role: RoleBatsman}
	weakBowl := &Player{Bowling: 40, Role: RolePaceBowler}
	weakBat := &Player{Batting: 40, Role: RoleBatsman}
	strongBowl := &Player{Bowling: 80, Role: RolePaceBowler}
	tactics := defaultTactics()

	countBoundaries := func(batter, bowler *Player, seed int64) int {
		rng := testRNG(seed)
		boundaries := 0
		for i := 0; i < 1000; i++ {
			runs, wicket := simulateBall(rng, batter, bowler, tactics, tactics)
			if !wicket && (runs == 4 || runs == 6) {
				boundaries++
			}
		}
		return boundaries
	}

	strong := countBoundaries(strongBat, weakBowl, 7)
	weak := countBoundaries(weakBat, strongBowl, 7)
	if strong <= weak {
		t.Fatalf("expected dominant batter to hit more boundaries: strong=%d weak=%d", strong, weak)
	}
}

func TestSimulateInningsStaysWithinLimits(t *testing.T) {
	batting := mixedClub("Batting", DivisionOne, 60)
	bowling := mixedClub("Bowling", DivisionOne, 60)

	card := simulateInnings(testRNG(1), batting, bowling, 0)

	if card.WicketsLost > WicketsPerSide {
		t.Fatalf("innings lost %d wickets, max is %d", card.WicketsLost, WicketsPerSide)
	}
	if card.OversPlayed > OversPerInnings {
		t.Fatalf("innings ran %v overs, max is %d", card.OversPlayed, OversPerInnings)
	}
	if len(card.BattingStats) != PlayersPerSide {
		t.Fatalf("expected %d batting lines, got %d", PlayersPerSide, len(card.BattingStats))
	}

	sum := card.Extras
	for _, s := range card.BattingStats {
		sum += s.Runs
	}
	if sum != card.TotalRuns {
		t.Fatalf("batting lines sum to %d, scorecard total is %d", sum, card.TotalRuns)
	}
}

func TestSimulateInningsStopsAtTarget(t *testing.T) {
	batting := mixedClub("Chasers", DivisionOne, 90)
	bowling := mixedClub("Defenders", DivisionOne, 30)

	target := 50
	card := simulateInnings(testRNG(2), batting, bowling, target)
	if card.TotalRuns < target {
		t.Fatalf("strong chase ended on %d, expected at least the target %d", card.TotalRuns, target)
	}
	// One scoring stroke at most past the target
	if card.TotalRuns > target+5 {
		t.Fatalf("chase overshot target by %d runs", card.TotalRuns-target)
	}
}

func TestSimulateMatchProducesWinnerOrTie(t *testing.T) {
	home := mixedClub("Home", DivisionOne, 70)
	away := mixedClub("Away", DivisionOne, 50)

	result := simulateMatch(testRNG(3), home, away, DivisionOne, 1, 1)

	if result.IsTie && result.WinnerID != "" {
		t.Fatalf("tie with a winner id %q", result.WinnerID)
	}
	if !result.IsTie && result.WinnerID != home.ID && result.WinnerID != away.ID {
		t.Fatalf("winner %q is neither side", result.WinnerID)
	}
	if result.HomeInnings == nil || result.AwayInnings == nil {
		t.Fatal("expected both innings scorecards")
	}
	if result.Details == "" {
		t.Fatal("expected a result summary")
	}
	if result.WinnerID == away.ID && !strings.Contains(result.Details, "wickets") {
		t.Fatalf("chasing win should report a wickets margin, got %q", result.Details)
	}
}

func TestSimulateMatchCountsAppearances(t *testing.T) {
	home := mixedClub("Home", DivisionOne, 60)
	away := mixedClub("Away", DivisionOne, 60)

	simulateMatch(testRNG(4), home, away, DivisionOne, 1, 1)

	for _, p := range home.Squad {
		if p.MatchesPlayed != 1 {
			t.Fatalf("player %s has %d appearances, expected 1", p.Name, p.MatchesPlayed)
		}
	}
}

func TestSimulateMatchWithEmptySquadDoesNotAbort(t *testing.T) {
	home := testClub("Ghosts", DivisionThree, 0, RoleBatsman, 0, 0)
	away := mixedClub("Full", DivisionThree, 50)

	result := simulateMatch(testRNG(5), home, away, DivisionThree, 1, 1)
	if result.HomeScore != 0 {
		t.Fatalf("empty squad scored %d", result.HomeScore)
	}
	if result.IsTie || result.WinnerID != away.ID {
		t.Fatalf("expected the full side to win, got %+v", result)
	}
}

func TestSimulateMatchBothSquadsEmptyTies(t *testing.T) {
	home := testClub("A", DivisionThree, 0, RoleBatsman, 0, 0)
	away := testClub("B", DivisionThree, 0, RoleBatsman, 0, 0)

	result := simulateMatch(testRNG(6), home, away, DivisionThree, 1, 1)
	if !result.IsTie {
		t.Fatalf("expected a tie between two empty squads, got %q", result.Details)
	}
}

func TestSelectBowlingAttackPadsThinAttacks(t *testing.T) {
	club := testClub("Batters Only", DivisionOne, 11, RoleBatsman, 60, 30)
	attack := selectBowlingAttack(club.BestXI())
	if len(attack) != MinBowlers {
		t.Fatalf("expected attack padded to %d bowlers, got %d", MinBowlers, len(attack))
	}
}

func TestBestXIExcludesInjured(t *testing.T) {
	club := mixedClub("Injury Prone", DivisionOne, 60)
	club.Squad[0].IsInjured = true
	club.Squad[1].IsInjured = true

	for _, p := range club.BestXI() {
		if p.IsInjured {
			t.Fatalf("injured player %s selected", p.Name)
		}
	}
	if len(club.BestXI()) != PlayersPerSide {
		t.Fatalf("expected a full XI from 16 fit players, got %d", len(club.BestXI()))
	}
}
