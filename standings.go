package main

import (
	"fmt"
	"sort"
)

// standingsFor returns the division's clubs sorted into table order:
// points, then wins, then net run rate, all descending. The sort is stable
// so a three-way tie keeps the prior relative order.
func (l *League) standingsFor(division string) []*Club {
	clubs := l.Divisions[division]
	table := make([]*Club, len(clubs))
	copy(table, clubs)
	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Won != b.Won {
			return a.Won > b.Won
		}
		return a.NetRunRate > b.NetRunRate
	})
	return table
}

// processMatchResult is the single place season counters mutate after a
// match: played/won/lost/tied/points, runs for and against, form, NRR, and
// the global records.
func (l *League) processMatchResult(result *MatchResult, home, away *Club, season int) {
	home.Played++
	away.Played++
	home.RunsFor += result.HomeScore
	home.RunsAgainst += result.AwayScore
	away.RunsFor += result.AwayScore
	away.RunsAgainst += result.HomeScore

	switch result.WinnerID {
	case home.ID:
		home.Won++
		home.Points += PointsWin
		away.Lost++
		home.Form = append(home.Form, FormWin)
		away.Form = append(away.Form, FormLoss)
	case away.ID:
		away.Won++
		away.Points += PointsWin
		home.Lost++
		home.Form = append(home.Form, FormLoss)
		away.Form = append(away.Form, FormWin)
	default:
		home.Tied++
		away.Tied++
		home.Points += PointsTie
		away.Points += PointsTie
		home.Form = append(home.Form, FormTie)
		away.Form = append(away.Form, FormTie)
	}

	home.Form = truncateForm(home.Form)
	away.Form = truncateForm(away.Form)

	// NRR is the average run difference per game
	home.NetRunRate = netRunRate(home.RunsFor, home.RunsAgainst, home.Played)
	away.NetRunRate = netRunRate(away.RunsFor, away.RunsAgainst, away.Played)

	l.updateRecords(result, home, away, season)
}

func netRunRate(runsFor, runsAgainst, played int) float64 {
	return float64(runsFor-runsAgainst) / float64(max(1, played))
}

func truncateForm(form []string) []string {
	if len(form) > MaxFormEntries {
		return form[len(form)-MaxFormEntries:]
	}
	return form
}

// updateRecords checks a result against the global bests. Each record moves
// only when strictly improved; best bowling breaks ties on fewer runs.
func (l *League) updateRecords(result *MatchResult, home, away *Club, season int) {
	for _, side := range []struct {
		score int
		club  *Club
	}{{result.HomeScore, home}, {result.AwayScore, away}} {
		if side.score > l.Records.HighestTeamScoreRuns {
			l.Records.HighestTeamScoreRuns = side.score
			l.Records.HighestTeamScoreDetails = fmt.Sprintf("%d - %s (Season %d)", side.score, side.club.Name, season)
		}
	}

	for _, innings := range []*Scorecard{result.HomeInnings, result.AwayInnings} {
		if innings == nil {
			continue
		}
		for _, bat := range innings.BattingStats {
			if bat.Runs > l.Records.HighestPlayerScoreRuns {
				l.Records.HighestPlayerScoreRuns = bat.Runs
				l.Records.HighestPlayerScoreDetails = fmt.Sprintf("%d by %s (Season %d)", bat.Runs, bat.PlayerName, season)
			}
		}
		for _, bowl := range innings.BowlingStats {
			w, r := bowl.Wickets, bowl.RunsConceded
			if w > l.Records.BestBowlingWickets ||
				(w == l.Records.BestBowlingWickets && r < l.Records.BestBowlingRuns) {
				l.Records.BestBowlingWickets = w
				l.Records.BestBowlingRuns = r
				l.Records.BestBowlingDetails = fmt.Sprintf("%d/%d by %s (Season %d)", w, r, bowl.PlayerName, season)
			}
		}
	}
}

// checkSeasonRecords runs at season end against a player's season totals
func (l *League) checkSeasonRecords(p *Player, club *Club, season int) {
	if p.SeasonRuns > l.Records.MostRunsSeasonRuns {
		l.Records.MostRunsSeasonRuns = p.SeasonRuns
		l.Records.MostRunsSeasonDetails = fmt.Sprintf("%d by %s (%s, S%d)", p.SeasonRuns, p.Name, club.Name, season)
	}
	if p.SeasonWickets > l.Records.MostWicketsSeasonWickets {
		l.Records.MostWicketsSeasonWickets = p.SeasonWickets
		l.Records.MostWicketsSeasonDetails = fmt.Sprintf("%d by %s (%s, S%d)", p.SeasonWickets, p.Name, club.Name, season)
	}
}

// archiveStandings snapshots every division's final table into the
// cross-season history
func (l *League) archiveStandings(season int) {
	l.History[season] = make(map[string][]*StandingRecord, len(divisions))
	for _, div := range divisions {
		standings := l.standingsFor(div)
		records := make([]*StandingRecord, 0, len(standings))
		for i, c := range standings {
			records = append(records, &StandingRecord{
				Pos:      i + 1,
				TeamName: c.Name,
				Played:   c.Played,
				Won:      c.Won,
				Lost:     c.Lost,
				Tied:     c.Tied,
				Points:   c.Points,
				NRR:      c.NetRunRate,
			})
		}
		l.History[season][div] = records
	}
}
