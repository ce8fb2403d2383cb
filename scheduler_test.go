package main

import (
	"fmt"
	"testing"
)

func namedClubs(n int) []*Club {
	clubs := make([]*Club, n)
	for i := range clubs {
		clubs[i] = testClub(fmt.Sprintf("Club %d", i+1), DivisionOne, 18, RoleBatsman, 50, 50)
	}
	return clubs
}

func TestFixtureListRoundCount(t *testing.T) {
	for _, n := range []int{4, 6, 10} {
		clubs := namedClubs(n)
		rounds := generateFixtureList(clubs)
		if got, want := len(rounds), 2*(n-1); got != want {
			t.Fatalf("%d clubs: expected %d rounds, got %d", n, want, got)
		}
		for i, round := range rounds {
			if len(round) != n/2 {
				t.Fatalf("%d clubs: round %d has %d fixtures, expected %d", n, i, len(round), n/2)
			}
		}
	}
}

func TestFixtureListEachClubOncePerRound(t *testing.T) {
	clubs := namedClubs(10)
	rounds := generateFixtureList(clubs)
	for i, round := range rounds {
		seen := make(map[string]bool)
		for _, f := range round {
			if seen[f.Home.ID] || seen[f.Away.ID] {
				t.Fatalf("round %d: a club appears twice", i)
			}
			seen[f.Home.ID] = true
			seen[f.Away.ID] = true
		}
		if len(seen) != 10 {
			t.Fatalf("round %d: %d clubs scheduled, expected 10", i, len(seen))
		}
	}
}

func TestFixtureListEachOrderedPairOnce(t *testing.T) {
	clubs := namedClubs(10)
	rounds := generateFixtureList(clubs)

	pairs := make(map[string]int)
	for _, round := range rounds {
		for _, f := range round {
			pairs[f.Home.ID+"|"+f.Away.ID]++
		}
	}
	if len(pairs) != 10*9 {
		t.Fatalf("expected %d distinct ordered pairs, got %d", 10*9, len(pairs))
	}
	for pair, count := range pairs {
		if count != 1 {
			t.Fatalf("ordered pair %s scheduled %d times", pair, count)
		}
	}
}

func TestFixtureListOddClubCountGetsBye(t *testing.T) {
	clubs := namedClubs(5)
	rounds := generateFixtureList(clubs)
	if got, want := len(rounds), 2*5; got != want {
		t.Fatalf("expected %d rounds with a bye slot, got %d", want, got)
	}

	matchesPerClub := make(map[string]int)
	for _, round := range rounds {
		if len(round) != 2 {
			t.Fatalf("expected 2 fixtures per round with a bye, got %d", len(round))
		}
		for _, f := range round {
			matchesPerClub[f.Home.ID]++
			matchesPerClub[f.Away.ID]++
		}
	}
	for id, count := range matchesPerClub {
		if count != 8 {
			t.Fatalf("club %s plays %d matches, expected 8", id, count)
		}
	}
}
