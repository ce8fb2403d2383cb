package main

import (
	"sort"
)

// Role is the closed set of player roles
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RolePaceBowler   Role = "Pace Bowler"
	RoleSpinBowler   Role = "Spin Bowler"
	RoleAllrounder   Role = "Allrounder"
	RoleWicketkeeper Role = "Wicketkeeper"
)

// Order matters: ties in youth-intake role counting resolve to the earliest role
var allRoles = []Role{RoleBatsman, RolePaceBowler, RoleSpinBowler, RoleAllrounder, RoleWicketkeeper}

func (r Role) canBowl() bool {
	return r == RolePaceBowler || r == RoleSpinBowler || r == RoleAllrounder
}

// Staff roles
const (
	StaffCoach  = "Coach"
	StaffPhysio = "Physio"
	StaffScout  = "Scout"
)

type Staff struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Skill int    `json:"skill"`
	Wage  int    `json:"wage"`
}

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	Role Role   `json:"role"`

	// Skills (10-99)
	Batting   int `json:"batting"`
	Bowling   int `json:"bowling"`
	Fielding  int `json:"fielding"`
	Fitness   int `json:"fitness"`
	Potential int `json:"potential"`

	// Mentals & hidden
	Morale          int `json:"morale"`
	Leadership      int `json:"leadership"`
	WorkEthic       int `json:"work_ethic"`
	InjuryProneness int `json:"injury_proneness"`

	// Skill growth tracking, refreshed at the start of each season
	StartBatting  int `json:"start_batting"`
	StartBowling  int `json:"start_bowling"`
	StartFielding int `json:"start_fielding"`
	StartOverall  int `json:"start_overall"`

	// Contract
	Wage          int `json:"wage"`
	ContractYears int `json:"contract_years"`

	// All-time stats
	MatchesPlayed int `json:"matches_played"`
	RunsScored    int `json:"runs_scored"`
	WicketsTaken  int `json:"wickets_taken"`

	// Seasonal stats
	SeasonRuns        int `json:"season_runs"`
	SeasonWickets     int `json:"season_wickets"`
	LastSeasonRuns    int `json:"last_season_runs"`
	LastSeasonWickets int `json:"last_season_wickets"`

	Form           float64 `json:"form"`
	IsInjured      bool    `json:"is_injured"`
	InjuryDuration int     `json:"injury_duration"`
}

// Overall is the role-weighted blend of the three core skills. It is always
// recomputed from current skills, never cached.
func (p *Player) Overall() int {
	switch p.Role {
	case RoleBatsman:
		return int(float64(p.Batting)*0.8 + float64(p.Fielding)*0.2)
	case RolePaceBowler, RoleSpinBowler:
		return int(float64(p.Bowling)*0.8 + float64(p.Fielding)*0.2)
	case RoleAllrounder:
		return int(float64(p.Batting)*0.4 + float64(p.Bowling)*0.4 + float64(p.Fielding)*0.2)
	case RoleWicketkeeper:
		return int(float64(p.Batting)*0.6 + float64(p.Fielding)*0.4)
	}
	return 50
}

// Value is the market value in $K, non-linear in overall and discounted by age
func (p *Player) Value() int {
	baseVal := float64(p.Overall()*p.Overall()) / 10.0
	ageFactor := 1.0
	if p.Age < 24 {
		ageFactor = 1.3
	} else if p.Age > 32 {
		ageFactor = 0.6
	}
	return int(baseVal * ageFactor * 10)
}

func (p *Player) updateStartSkills() {
	p.StartBatting = p.Batting
	p.StartBowling = p.Bowling
	p.StartFielding = p.Fielding
	p.StartOverall = p.Overall()
}

type Tactics struct {
	BattingIntent float64 `json:"batting_intent"`
	BowlingIntent float64 `json:"bowling_intent"`
	PaceSpinBias  float64 `json:"pace_spin_bias"`
	RiskTolerance float64 `json:"risk_tolerance"`
}

func defaultTactics() Tactics {
	return Tactics{BattingIntent: 0.5, BowlingIntent: 0.5, PaceSpinBias: 0.5, RiskTolerance: 0.5}
}

type Club struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Division string `json:"division"`

	// History
	HistoryCash    []int     `json:"history_cash"`
	HistoryRank    []int     `json:"history_rank"`
	RetiredPlayers []*Player `json:"retired_players"`

	// Resources
	Reputation      int `json:"reputation"`
	Fanbase         int `json:"fanbase"`
	Cash            int `json:"cash"`
	CashLastWeek    int `json:"cash_last_week"`
	CashStartSeason int `json:"cash_start_season"`
	WageBudget      int `json:"wage_budget"`

	// Facilities & staff
	StadiumCapacity int      `json:"stadium_capacity"`
	StadiumLevel    int      `json:"stadium_level"`
	AcademyLevel    int      `json:"academy_level"`
	MedicalLevel    int      `json:"medical_level"`
	ScoutingNetwork int      `json:"scouting_network"`
	Staff           []*Staff `json:"staff"`
	CoachingRating  int      `json:"coaching_rating"`
	YouthRating     int      `json:"youth_rating"`

	// Squad & tactics
	Squad   []*Player `json:"squad"`
	Tactics Tactics   `json:"tactics"`

	// Season stats
	Played      int      `json:"played"`
	Won         int      `json:"won"`
	Lost        int      `json:"lost"`
	Tied        int      `json:"tied"`
	Points      int      `json:"points"`
	NetRunRate  float64  `json:"net_run_rate"`
	RunsFor     int      `json:"runs_for"`
	RunsAgainst int      `json:"runs_against"`
	Form        []string `json:"form"` // Last 5 results: W/L/T
}

// BestXI returns the top 11 non-injured players by overall, best first.
// A depleted squad yields fewer than 11; the caller fields whatever remains.
func (c *Club) BestXI() []*Player {
	available := make([]*Player, 0, len(c.Squad))
	for _, p := range c.Squad {
		if !p.IsInjured {
			available = append(available, p)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Overall() > available[j].Overall()
	})
	if len(available) > PlayersPerSide {
		available = available[:PlayersPerSide]
	}
	return available
}

// WageBill is the combined player and staff wage bill in $K
func (c *Club) WageBill() int {
	total := 0
	for _, p := range c.Squad {
		total += p.Wage
	}
	for _, s := range c.Staff {
		total += s.Wage
	}
	return total
}

func (c *Club) AverageAge() float64 {
	if len(c.Squad) == 0 {
		return 0
	}
	sum := 0
	for _, p := range c.Squad {
		sum += p.Age
	}
	return float64(sum) / float64(len(c.Squad))
}

// avgStaffSkill averages the skill of staff in the given role. Clubs without
// any such staff fall back to a weak baseline of 20.
func (c *Club) avgStaffSkill(role string) float64 {
	sum, count := 0, 0
	for _, s := range c.Staff {
		if s.Role == role {
			sum += s.Skill
			count++
		}
	}
	if count == 0 {
		return 20
	}
	return float64(sum) / float64(count)
}

// removePlayer detaches a player from the squad by id. This is the only way
// squad membership shrinks outside retirement.
func (c *Club) removePlayer(id string) (*Player, bool) {
	for i, p := range c.Squad {
		if p.ID == id {
			c.Squad = append(c.Squad[:i], c.Squad[i+1:]...)
			return p, true
		}
	}
	return nil, false
}

// PlayerMatchStats is one player's line in a scorecard
type PlayerMatchStats struct {
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	Runs         int     `json:"runs"`
	Balls        int     `json:"balls"`
	Fours        int     `json:"fours"`
	Sixes        int     `json:"sixes"`
	IsOut        bool    `json:"is_out"`
	Wickets      int     `json:"wickets"`
	Overs        float64 `json:"overs"`
	RunsConceded int     `json:"runs_conceded"`
}

// Scorecard is built once per innings and never mutated afterward
type Scorecard struct {
	BattingStats []*PlayerMatchStats `json:"batting_stats"`
	BowlingStats []*PlayerMatchStats `json:"bowling_stats"`
	TotalRuns    int                 `json:"total_runs"`
	WicketsLost  int                 `json:"wickets_lost"`
	OversPlayed  float64             `json:"overs_played"`
	Extras       int                 `json:"extras"`
}

// MatchResult is immutable once produced and appended to the results log
type MatchResult struct {
	HomeTeamID   string     `json:"home_team_id"`
	HomeTeamName string     `json:"home_team_name"`
	AwayTeamID   string     `json:"away_team_id"`
	AwayTeamName string     `json:"away_team_name"`
	HomeScore    int        `json:"home_score"`
	AwayScore    int        `json:"away_score"`
	WinnerID     string     `json:"winner_id,omitempty"`
	IsTie        bool       `json:"is_tie"`
	Details      string     `json:"details"`
	Division     string     `json:"division"`
	Season       int        `json:"season"`
	Week         int        `json:"week"`
	HomeInnings  *Scorecard `json:"home_innings"`
	AwayInnings  *Scorecard `json:"away_innings"`
}

// StandingRecord is an immutable snapshot of one table row, used only for
// the cross-season archive
type StandingRecord struct {
	Pos      int     `json:"pos"`
	TeamName string  `json:"team_name"`
	Played   int     `json:"played"`
	Won      int     `json:"won"`
	Lost     int     `json:"lost"`
	Tied     int     `json:"tied"`
	Points   int     `json:"points"`
	NRR      float64 `json:"nrr"`
}

// LeagueRecords holds the best performances ever seen, updated only when
// strictly improved
type LeagueRecords struct {
	HighestTeamScoreRuns      int    `json:"highest_team_score_runs"`
	HighestTeamScoreDetails   string `json:"highest_team_score_details"`
	HighestPlayerScoreRuns    int    `json:"highest_player_score_runs"`
	HighestPlayerScoreDetails string `json:"highest_player_score_details"`
	BestBowlingWickets        int    `json:"best_bowling_wickets"`
	BestBowlingRuns           int    `json:"best_bowling_runs"`
	BestBowlingDetails        string `json:"best_bowling_details"`
	MostRunsSeasonRuns        int    `json:"most_runs_season_runs"`
	MostRunsSeasonDetails     string `json:"most_runs_season_details"`
	MostWicketsSeasonWickets  int    `json:"most_wickets_season_wickets"`
	MostWicketsSeasonDetails  string `json:"most_wickets_season_details"`
}

func newLeagueRecords() LeagueRecords {
	return LeagueRecords{
		HighestTeamScoreDetails:   "None",
		HighestPlayerScoreDetails: "None",
		BestBowlingRuns:           999,
		BestBowlingDetails:        "None",
		MostRunsSeasonDetails:     "None",
		MostWicketsSeasonDetails:  "None",
	}
}

// League owns its divisions and clubs, the cross-season standings archive
// and the global records
type League struct {
	Divisions map[string][]*Club                   `json:"divisions"`
	History   map[int]map[string][]*StandingRecord `json:"history"`
	Records   LeagueRecords                        `json:"records"`
}

func newLeague() *League {
	l := &League{
		Divisions: make(map[string][]*Club, len(divisions)),
		History:   make(map[int]map[string][]*StandingRecord),
		Records:   newLeagueRecords(),
	}
	for _, d := range divisions {
		l.Divisions[d] = []*Club{}
	}
	return l
}

func (l *League) addClub(club *Club) {
	if _, ok := l.Divisions[club.Division]; ok {
		l.Divisions[club.Division] = append(l.Divisions[club.Division], club)
	}
}

func (l *League) findClub(id string) *Club {
	for _, d := range divisions {
		for _, c := range l.Divisions[d] {
			if c.ID == id {
				return c
			}
		}
	}
	return nil
}

func (l *League) allClubs() []*Club {
	var clubs []*Club
	for _, d := range divisions {
		clubs = append(clubs, l.Divisions[d]...)
	}
	return clubs
}

// findOwner resolves the club currently holding a player by linear lookup;
// there are no back-pointers from players to clubs
func (l *League) findOwner(playerID string) *Club {
	for _, c := range l.allClubs() {
		for _, p := range c.Squad {
			if p.ID == playerID {
				return c
			}
		}
	}
	return nil
}
