package main

import (
	"fmt"
	"math/rand"
	"sort"
)

// simulateMatch resolves one fixture into a two-innings result. All
// randomness comes from the supplied stream so matches can run in parallel
// without losing determinism.
func simulateMatch(rng *rand.Rand, home, away *Club, division string, season, week int) *MatchResult {
	for _, p := range home.Squad {
		p.MatchesPlayed++
	}
	for _, p := range away.Squad {
		p.MatchesPlayed++
	}

	innings1 := simulateInnings(rng, home, away, 0)
	innings2 := simulateInnings(rng, away, home, innings1.TotalRuns+1)

	result := &MatchResult{
		HomeTeamID:   home.ID,
		HomeTeamName: home.Name,
		AwayTeamID:   away.ID,
		AwayTeamName: away.Name,
		HomeScore:    innings1.TotalRuns,
		AwayScore:    innings2.TotalRuns,
		Division:     division,
		Season:       season,
		Week:         week,
		HomeInnings:  innings1,
		AwayInnings:  innings2,
	}

	switch {
	case innings1.TotalRuns > innings2.TotalRuns:
		result.WinnerID = home.ID
		margin := innings1.TotalRuns - innings2.TotalRuns
		result.Details = fmt.Sprintf("%s won by %d runs", home.Name, margin)
	case innings2.TotalRuns > innings1.TotalRuns:
		result.WinnerID = away.ID
		// Margin by wickets in hand; overs remaining are not distinguished
		margin := WicketsPerSide - innings2.WicketsLost
		result.Details = fmt.Sprintf("%s won by %d wickets", away.Name, margin)
	default:
		result.IsTie = true
		result.Details = "Match Tied"
	}
	return result
}

// simulateInnings plays out up to 20 overs ball by ball. A target of 0 means
// the side bats first; otherwise the innings ends as soon as the target is
// reached. Depleted squads field whatever remains and never abort the match.
func simulateInnings(rng *rand.Rand, battingTeam, bowlingTeam *Club, target int) *Scorecard {
	card := &Scorecard{}

	battingXI := battingTeam.BestXI()
	bowlingXI := bowlingTeam.BestXI()
	if len(battingXI) == 0 {
		return card
	}

	bowlers := selectBowlingAttack(bowlingXI)

	battingStats := make(map[string]*PlayerMatchStats, len(battingXI))
	for _, p := range battingXI {
		s := &PlayerMatchStats{PlayerID: p.ID, PlayerName: p.Name}
		battingStats[p.ID] = s
		card.BattingStats = append(card.BattingStats, s)
	}
	bowlingStats := make(map[string]*PlayerMatchStats, len(bowlers))

	striker := battingXI[0]
	var nonStriker *Player
	if len(battingXI) > 1 {
		nonStriker = battingXI[1]
	}
	nextBatter := 2

	currentOver := 0
	totalRuns := 0
	wickets := 0

	for currentOver < OversPerInnings && wickets < WicketsPerSide && striker != nil {
		var bowler *Player
		var bowlerStats *PlayerMatchStats
		if len(bowlers) > 0 {
			bowler = bowlers[currentOver%len(bowlers)]
			bowlerStats = bowlingStats[bowler.ID]
			if bowlerStats == nil {
				bowlerStats = &PlayerMatchStats{PlayerID: bowler.ID, PlayerName: bowler.Name}
				bowlingStats[bowler.ID] = bowlerStats
				card.BowlingStats = append(card.BowlingStats, bowlerStats)
			}
		}

		for ball := 0; ball < BallsPerOver; ball++ {
			if wickets >= WicketsPerSide || striker == nil {
				break
			}
			if target > 0 && totalRuns >= target {
				break
			}

			runs, isWicket := simulateBall(rng, striker, bowler, battingTeam.Tactics, bowlingTeam.Tactics)
			strikerStats := battingStats[striker.ID]

			if !isWicket {
				strikerStats.Runs += runs
				strikerStats.Balls++
				if runs == 4 {
					strikerStats.Fours++
				}
				if runs == 6 {
					strikerStats.Sixes++
				}

				striker.RunsScored += runs
				striker.SeasonRuns += runs

				totalRuns += runs
				if bowlerStats != nil {
					bowlerStats.RunsConceded += runs
				}

				// Rotate strike on odd runs
				if runs%2 == 1 && nonStriker != nil {
					striker, nonStriker = nonStriker, striker
				}
			} else {
				strikerStats.Balls++
				strikerStats.IsOut = true
				wickets++
				if bowlerStats != nil {
					bowlerStats.Wickets++
				}
				if bowler != nil {
					bowler.WicketsTaken++
					bowler.SeasonWickets++
				}

				if nextBatter < len(battingXI) {
					striker = battingXI[nextBatter]
					nextBatter++
				} else {
					striker = nil // all out
				}
			}
		}

		if target > 0 && totalRuns >= target {
			break
		}

		// End-of-over strike rotation
		if striker != nil && nonStriker != nil {
			striker, nonStriker = nonStriker, striker
		}
		if bowlerStats != nil {
			bowlerStats.Overs += 1.0
		}
		currentOver++
	}

	card.TotalRuns = totalRuns
	card.WicketsLost = wickets
	card.OversPlayed = float64(currentOver)
	return card
}

// selectBowlingAttack picks the bowling-capable members of the XI, padded
// from the rest of the side when fewer than five qualify, ordered by bowling
// skill so the rotation over the 20 overs is deterministic.
func selectBowlingAttack(bowlingXI []*Player) []*Player {
	var bowlers []*Player
	for _, p := range bowlingXI {
		if p.Role.canBowl() {
			bowlers = append(bowlers, p)
		}
	}
	if len(bowlers) < MinBowlers {
		for _, p := range bowlingXI {
			if len(bowlers) >= MinBowlers {
				break
			}
			if !p.Role.canBowl() {
				bowlers = append(bowlers, p)
			}
		}
	}
	sort.SliceStable(bowlers, func(i, j int) bool {
		return bowlers[i].Bowling > bowlers[j].Bowling
	})
	return bowlers
}

// simulateBall samples one delivery outcome from a distribution over
// {dot, single, four, six, wicket} shaped by the batter/bowler skill
// differential and the two sides' tactical intents.
func simulateBall(rng *rand.Rand, batter, bowler *Player, batTactics, bowlTactics Tactics) (int, bool) {
	bowling := 40.0 // substitute-grade attack when no bowler is available
	if bowler != nil {
		bowling = float64(bowler.Bowling)
	}
	skillDiff := float64(batter.Batting) - bowling

	pDot := 30 - skillDiff*0.2
	pSingle := 30 + skillDiff*0.1
	pBoundary := 15 + skillDiff*0.2 + (batTactics.BattingIntent-0.5)*10
	pWicket := 5 - skillDiff*0.1 + (bowlTactics.BowlingIntent-0.5)*5

	pDot = max(0, pDot)
	pSingle = max(0, pSingle)
	pBoundary = max(0, pBoundary)
	pWicket = max(0, pWicket)

	// Normalize so the outcome weights sum to 100
	total := pDot + pSingle + pBoundary + pWicket
	if total <= 0 {
		return 1, false
	}
	scale := 100.0 / total

	roll := rng.Float64() * 100

	acc := pDot * scale
	if roll < acc {
		return 0, false
	}
	acc += pSingle * scale
	if roll < acc {
		return 1, false
	}

	// Boundaries split 70/30 between fours and sixes
	acc += pBoundary * 0.7 * scale
	if roll < acc {
		return 4, false
	}
	acc += pBoundary * 0.3 * scale
	if roll < acc {
		return 6, false
	}

	acc += pWicket * scale
	if roll < acc {
		return 0, true
	}

	return 1, false
}
