package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

const maxResultsLog = 1000

// GameEngine owns the whole simulation: the league, the fixture lists, the
// rolling results log and the season/week counters. Every subsystem receives
// state explicitly; there are no package-level singletons. All access goes
// through the engine's lock, exactly one writer at a time.
type GameEngine struct {
	mu sync.RWMutex

	seed int64
	rng  *rand.Rand

	league   *League
	fixtures map[string][]Round
	results  []*MatchResult

	startYear     int
	currentYear   int
	seasonNumber  int
	currentWeek   int
	managedClubID string
}

func newGameEngine(seed int64) *GameEngine {
	rng, seed := newRootRNG(seed)
	return &GameEngine{
		seed:         seed,
		rng:          rng,
		league:       newLeague(),
		fixtures:     make(map[string][]Round),
		startYear:    time.Now().Year(),
		currentYear:  time.Now().Year(),
		seasonNumber: 1,
		currentWeek:  1,
	}
}

// initializeWorld creates every division's clubs with random squads and
// generates the opening fixture lists. A malformed division setup is fatal.
func (e *GameEngine) initializeWorld() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, div := range divisions {
		names, ok := teamNames[div]
		if !ok || len(names) < TeamsPerDivision {
			return fmt.Errorf("division %q has %d club names, need %d", div, len(names), TeamsPerDivision)
		}
		for i := 0; i < TeamsPerDivision; i++ {
			e.league.addClub(e.createRandomClub(names[i], div))
		}
	}
	e.scheduleFixtures()

	logInfo("🏆 World initialized: %d divisions, %d clubs, season %d",
		len(divisions), len(e.league.allClubs()), e.seasonNumber)
	return nil
}

func (e *GameEngine) createRandomClub(name, division string) *Club {
	meanCash := startingCashMean[division]
	meanAttr := attrMean[division]

	club := &Club{
		ID:             uuid.NewString(),
		Name:           name,
		Division:       division,
		Cash:           int(gauss(e.rng, float64(meanCash), float64(meanCash)*0.2)),
		Reputation:     meanAttr,
		Fanbase:        100,
		CoachingRating: 50,
		YouthRating:    50,
		Tactics:        defaultTactics(),
	}
	club.CashStartSeason = club.Cash
	club.CashLastWeek = club.Cash

	squadRoles := []Role{
		RoleBatsman, RoleBatsman, RoleBatsman, RoleBatsman, RoleBatsman, RoleBatsman,
		RolePaceBowler, RolePaceBowler, RolePaceBowler, RolePaceBowler,
		RoleSpinBowler, RoleSpinBowler, RoleSpinBowler,
		RoleAllrounder, RoleAllrounder, RoleAllrounder,
		RoleWicketkeeper, RoleWicketkeeper,
	}
	for _, role := range squadRoles {
		club.Squad = append(club.Squad, e.createRandomPlayer(meanAttr, role))
	}

	for _, s := range []struct {
		role string
		mult int
	}{{StaffCoach, 5}, {StaffPhysio, 4}, {StaffScout, 3}} {
		club.Staff = append(club.Staff, &Staff{
			ID:    uuid.NewString(),
			Name:  randomName(e.rng),
			Role:  s.role,
			Skill: meanAttr,
			Wage:  meanAttr * s.mult,
		})
	}

	switch division {
	case DivisionOne:
		club.StadiumLevel = 3
	case DivisionTwo:
		club.StadiumLevel = 2
	default:
		club.StadiumLevel = 1
	}
	club.AcademyLevel = club.StadiumLevel
	club.MedicalLevel = club.StadiumLevel
	club.StadiumCapacity = 2000 * club.StadiumLevel

	club.WageBudget = int(float64(club.WageBill()) * WageBudgetRatio)
	return club
}

// newPlayer builds a player with clamped skills and baseline hidden
// attributes
func newPlayer(rng *rand.Rand, name string, age int, role Role, batting, bowling, fielding int) *Player {
	p := &Player{
		ID:              uuid.NewString(),
		Name:            name,
		Age:             age,
		Role:            role,
		Batting:         max(MinSkill, min(MaxSkill, batting)),
		Bowling:         max(MinSkill, min(MaxSkill, bowling)),
		Fielding:        max(MinSkill, min(MaxSkill, fielding)),
		Fitness:         MaxFitness,
		Morale:          50,
		Leadership:      10,
		WorkEthic:       10,
		InjuryProneness: 10,
		Form:            50.0,
	}
	return p
}

func (e *GameEngine) createRandomPlayer(meanAttr int, role Role) *Player {
	batting := int(gauss(e.rng, float64(meanAttr), AttrStd))
	bowling := int(gauss(e.rng, float64(meanAttr), AttrStd))
	fielding := int(gauss(e.rng, float64(meanAttr), AttrStd))
	batting, bowling, fielding = applyRoleBias(role, batting, bowling, fielding)

	p := newPlayer(e.rng, randomName(e.rng), randBetween(e.rng, AgeMin, AgeMax), role, batting, bowling, fielding)
	p.Potential = min(100, max(batting, bowling)+randBetween(e.rng, 0, 20))
	p.Wage = max(MinWage, meanAttr/2)
	p.ContractYears = randBetween(e.rng, 1, 3)
	p.updateStartSkills()
	return p
}

// scheduleFixtures regenerates every division's fixture list from current
// membership. Fixtures are never persisted; they are rebuilt on load.
func (e *GameEngine) scheduleFixtures() {
	for _, div := range divisions {
		e.fixtures[div] = generateFixtureList(e.league.Divisions[div])
	}
}

// matchJob pins one fixture to its coordinates so a parallel run stays
// attributable to a deterministic substream
type matchJob struct {
	divIdx   int
	division string
	matchIdx int
	fixture  Fixture
}

// AdvanceWeek resolves one round across all divisions: matches in parallel
// on per-match substreams, then standings, finance, and recovery in fixture
// order. Once the played week passes the season length it rolls straight
// into end-of-season processing and reports seasonEnded.
func (e *GameEngine) AdvanceWeek() ([]*MatchResult, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	roundIdx := e.currentWeek - 1
	if roundIdx < 0 || roundIdx >= MatchesPerSeason {
		return nil, false, fmt.Errorf("week %d outside season of %d rounds", e.currentWeek, MatchesPerSeason)
	}

	for _, club := range e.league.allClubs() {
		club.CashLastWeek = club.Cash
	}

	var jobs []matchJob
	for divIdx, div := range divisions {
		rounds := e.fixtures[div]
		if roundIdx >= len(rounds) {
			continue
		}
		for matchIdx, fixture := range rounds[roundIdx] {
			jobs = append(jobs, matchJob{divIdx: divIdx, division: div, matchIdx: matchIdx, fixture: fixture})
		}
	}

	// Clubs appear at most once per round, so matches share no mutable
	// state and can run concurrently
	weekResults := make([]*MatchResult, len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job matchJob) {
			defer wg.Done()
			rng := substream(e.seed, int64(e.seasonNumber), int64(e.currentWeek), int64(job.divIdx), int64(job.matchIdx))
			result := simulateMatch(rng, job.fixture.Home, job.fixture.Away, job.division, e.seasonNumber, e.currentWeek)
			rollMatchInjury(rng, job.fixture.Home)
			rollMatchInjury(rng, job.fixture.Away)
			weekResults[i] = result
		}(i, job)
	}
	wg.Wait()

	// Shared state mutates sequentially in fixture order
	for i, job := range jobs {
		result := weekResults[i]
		e.league.processMatchResult(result, job.fixture.Home, job.fixture.Away, e.seasonNumber)
		processMatchRevenue(job.fixture.Home, job.fixture.Away)
		e.results = append(e.results, result)
		logInfo("🏏 %s", result.Details)
	}
	if len(e.results) > maxResultsLog {
		e.results = e.results[len(e.results)-maxResultsLog:]
	}

	if e.currentWeek%2 == 0 {
		for divIdx, div := range divisions {
			rng := substream(e.seed, int64(e.seasonNumber), int64(e.currentWeek), 1000+int64(divIdx))
			for _, club := range e.league.Divisions[div] {
				processRecovery(rng, club)
			}
		}
	}

	e.currentWeek++

	for _, div := range divisions {
		for rank, club := range e.league.standingsFor(div) {
			club.HistoryCash = append(club.HistoryCash, club.Cash)
			club.HistoryRank = append(club.HistoryRank, rank+1)
		}
	}

	seasonEnded := false
	if e.currentWeek > MatchesPerSeason {
		e.endSeasonLocked()
		seasonEnded = true
	}
	return weekResults, seasonEnded, nil
}

// SimulateSeason plays out every remaining week of the current season
func (e *GameEngine) SimulateSeason() (int, error) {
	played := 0
	for {
		results, seasonEnded, err := e.AdvanceWeek()
		if err != nil {
			return played, err
		}
		played += len(results)
		if seasonEnded {
			return played, nil
		}
	}
}

// endSeasonLocked runs the full season boundary: archive, promotion and
// relegation, prizes, wages, development, retirement, youth intake, the
// transfer window, counter reset and fixture regeneration. Caller holds the
// write lock.
func (e *GameEngine) endSeasonLocked() {
	logInfo("🏁 End of season %d (%d)", e.seasonNumber, e.currentYear)

	e.league.archiveStandings(e.seasonNumber)
	e.processLeagueChanges()

	for _, div := range divisions {
		for _, club := range e.league.Divisions[div] {
			payWages(club)

			for _, p := range club.Squad {
				e.league.checkSeasonRecords(p, club, e.seasonNumber)

				p.LastSeasonRuns = p.SeasonRuns
				p.LastSeasonWickets = p.SeasonWickets
				p.SeasonRuns = 0
				p.SeasonWickets = 0

				developPlayer(e.rng, p, club)
				p.updateStartSkills()
			}

			var keep []*Player
			for _, p := range club.Squad {
				if p.Age > retirementAge(e.rng) {
					club.RetiredPlayers = append(club.RetiredPlayers, p)
				} else {
					keep = append(keep, p)
				}
			}
			club.Squad = keep

			runYouthIntake(e.rng, club)
		}
	}

	transfers := runTransferWindow(e.rng, e.league)
	logInfo("💸 Transfer window closed: %d deals completed", transfers)

	e.currentYear++
	e.seasonNumber++
	e.currentWeek = 1

	for _, club := range e.league.allClubs() {
		club.CashStartSeason = club.Cash
		club.CashLastWeek = club.Cash
	}

	e.resetSeasonStats()
	e.scheduleFixtures()
	logInfo("🎬 Season %d ready, fixtures regenerated", e.seasonNumber)
}

// processLeagueChanges pays rank prizes from the final tables, then swaps
// the top clubs of each lower division with the bottom clubs of the
// division above. All standings are snapshotted before any club moves.
func (e *GameEngine) processLeagueChanges() {
	awardPrizeMoney(e.league)

	finalTables := make(map[string][]*Club, len(divisions))
	for _, div := range divisions {
		finalTables[div] = e.league.standingsFor(div)
	}

	for i := 1; i < len(divisions); i++ {
		upper, lower := divisions[i-1], divisions[i]
		table := finalTables[upper]

		promoted := finalTables[lower][:PromotionZones]
		relegated := table[len(table)-RelegationZones:]

		for _, c := range promoted {
			e.league.removeClubFromDivision(c, lower)
			c.Division = upper
			e.league.Divisions[upper] = append(e.league.Divisions[upper], c)
			logInfo("⬆️  %s promoted to %s", c.Name, upper)
		}
		for _, c := range relegated {
			e.league.removeClubFromDivision(c, upper)
			c.Division = lower
			e.league.Divisions[lower] = append(e.league.Divisions[lower], c)
			logInfo("⬇️  %s relegated to %s", c.Name, lower)
		}
	}
}

func (l *League) removeClubFromDivision(club *Club, division string) {
	clubs := l.Divisions[division]
	for i, c := range clubs {
		if c.ID == club.ID {
			l.Divisions[division] = append(clubs[:i], clubs[i+1:]...)
			return
		}
	}
}

func (e *GameEngine) resetSeasonStats() {
	for _, club := range e.league.allClubs() {
		club.Played = 0
		club.Won = 0
		club.Lost = 0
		club.Tied = 0
		club.Points = 0
		club.NetRunRate = 0.0
		club.RunsFor = 0
		club.RunsAgainst = 0
		club.Form = nil
	}
}

// SelectClub marks the club the user manages
func (e *GameEngine) SelectClub(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.league.findClub(id) == nil {
		return fmt.Errorf("no club with id %s", id)
	}
	e.managedClubID = id
	return nil
}

// Snapshot is the persisted state contract. Fixtures are deliberately
// absent; they are regenerated deterministically from division membership.
type Snapshot struct {
	Version       int       `json:"version"`
	SavedAt       time.Time `json:"saved_at"`
	StartYear     int       `json:"start_year"`
	CurrentYear   int       `json:"current_year"`
	SeasonNumber  int       `json:"season_number"`
	CurrentWeek   int       `json:"current_week"`
	ManagedClubID string    `json:"managed_club_id,omitempty"`
	League        *League   `json:"league"`
}

// SaveGame writes the full league state to disk as one JSON document
func (e *GameEngine) SaveGame(filename string) error {
	e.mu.RLock()
	snapshot := Snapshot{
		Version:       SnapshotVersion,
		SavedAt:       time.Now(),
		StartYear:     e.startYear,
		CurrentYear:   e.currentYear,
		SeasonNumber:  e.seasonNumber,
		CurrentWeek:   e.currentWeek,
		ManagedClubID: e.managedClubID,
		League:        e.league,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	e.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	logInfo("💾 Game saved to %s", filename)
	return nil
}

// LoadGame replaces the in-memory league from a snapshot. The swap is
// atomic: on any failure the current state is left untouched.
func (e *GameEngine) LoadGame(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("save file %s not found", filename)
		}
		return fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if snapshot.League == nil {
		return fmt.Errorf("snapshot %s has no league state", filename)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.startYear = snapshot.StartYear
	e.currentYear = snapshot.CurrentYear
	e.seasonNumber = snapshot.SeasonNumber
	e.currentWeek = snapshot.CurrentWeek
	e.managedClubID = snapshot.ManagedClubID
	e.league = snapshot.League
	e.results = nil
	e.scheduleFixtures()

	logInfo("📂 Game loaded from %s (season %d, week %d)", filename, e.seasonNumber, e.currentWeek)
	return nil
}

// Read-only accessors for the API surface

func (e *GameEngine) SeasonInfo() (season, week, weeksTotal, year int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.seasonNumber, e.currentWeek, MatchesPerSeason, e.currentYear
}

func (e *GameEngine) Standings(division string) ([]*Club, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if _, ok := e.league.Divisions[division]; !ok {
		return nil, false
	}
	return e.league.standingsFor(division), true
}

func (e *GameEngine) FixturesFor(division string) ([]Round, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	rounds, ok := e.fixtures[division]
	return rounds, ok
}

func (e *GameEngine) Results(limit int) []*MatchResult {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if limit <= 0 || limit > len(e.results) {
		limit = len(e.results)
	}
	out := make([]*MatchResult, limit)
	copy(out, e.results[len(e.results)-limit:])
	return out
}

func (e *GameEngine) RecordBook() LeagueRecords {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.league.Records
}

func (e *GameEngine) SeasonHistory() map[int]map[string][]*StandingRecord {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.league.History
}

func (e *GameEngine) ClubByID(id string) *Club {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.league.findClub(id)
}

func (e *GameEngine) AllClubs() []*Club {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.league.allClubs()
}

func (e *GameEngine) ManagedClub() *Club {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.managedClubID == "" {
		return nil
	}
	return e.league.findClub(e.managedClubID)
}
