package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"text/template"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

var version = "1.0.0"

type LogEntry struct {
	ID        int       `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

var (
	logMu      sync.Mutex
	logEntries []*LogEntry
	logCounter int
)

func logInfo(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("%s", message)
	addLogEntry("INFO", message)
}

func addLogEntry(level, message string) {
	logMu.Lock()
	defer logMu.Unlock()
	logCounter++
	logEntries = append(logEntries, &LogEntry{ID: logCounter, Level: level, Message: message, Timestamp: time.Now()})
	if len(logEntries) > MaxLogEntries {
		logEntries = logEntries[len(logEntries)-MaxLogEntries:]
	}
}

func logEntryCount() int {
	logMu.Lock()
	defer logMu.Unlock()
	return len(logEntries)
}

// server wires the engine to the HTTP surface. Handlers are read-only
// except the explicit command endpoints (manage, advance, simulate,
// save, load).
type server struct {
	engine    *GameEngine
	settings  Settings
	startTime time.Time
}

// TableRow is one rendered standings line
type TableRow struct {
	Position    int      `json:"position"`
	ClubID      string   `json:"club_id"`
	Club        string   `json:"club"`
	Played      int      `json:"played"`
	Won         int      `json:"won"`
	Lost        int      `json:"lost"`
	Tied        int      `json:"tied"`
	RunsFor     int      `json:"runs_for"`
	RunsAgainst int      `json:"runs_against"`
	NetRunRate  float64  `json:"net_run_rate"`
	Points      int      `json:"points"`
	Form        []string `json:"form"`
}

func tableRows(standings []*Club) []TableRow {
	rows := make([]TableRow, 0, len(standings))
	for i, c := range standings {
		rows = append(rows, TableRow{
			Position:    i + 1,
			ClubID:      c.ID,
			Club:        c.Name,
			Played:      c.Played,
			Won:         c.Won,
			Lost:        c.Lost,
			Tied:        c.Tied,
			RunsFor:     c.RunsFor,
			RunsAgainst: c.RunsAgainst,
			NetRunRate:  c.NetRunRate,
			Points:      c.Points,
			Form:        c.Form,
		})
	}
	return rows
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"error": message, "timestamp": time.Now()})
}

func (s *server) healthCheck(w http.ResponseWriter, r *http.Request) {
	season, week, weeksTotal, year := s.engine.SeasonInfo()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"version":     version,
		"uptime":      time.Since(s.startTime).String(),
		"season":      season,
		"week":        week,
		"weeks_total": weeksTotal,
		"year":        year,
		"clubs":       len(s.engine.AllClubs()),
		"log_entries": logEntryCount(),
		"timestamp":   time.Now(),
	})
}

func (s *server) getCurrentSeason(w http.ResponseWriter, r *http.Request) {
	season, week, weeksTotal, year := s.engine.SeasonInfo()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"season":      season,
		"week":        week,
		"weeks_total": weeksTotal,
		"year":        year,
		"progress":    float64(week-1) / float64(weeksTotal),
		"timestamp":   time.Now(),
	})
}

func (s *server) getSeasonHistory(w http.ResponseWriter, r *http.Request) {
	history := s.engine.SeasonHistory()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"history":   history,
		"count":     len(history),
		"timestamp": time.Now(),
	})
}

func (s *server) getDivisions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"divisions": divisions,
		"count":     len(divisions),
		"timestamp": time.Now(),
	})
}

func (s *server) getDivisionTable(w http.ResponseWriter, r *http.Request) {
	division := mux.Vars(r)["division"]
	standings, ok := s.engine.Standings(division)
	if !ok {
		writeError(w, http.StatusNotFound, "Division not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"division":  division,
		"table":     tableRows(standings),
		"timestamp": time.Now(),
	})
}

func (s *server) getDivisionFixtures(w http.ResponseWriter, r *http.Request) {
	division := mux.Vars(r)["division"]
	rounds, ok := s.engine.FixturesFor(division)
	if !ok {
		writeError(w, http.StatusNotFound, "Division not found")
		return
	}

	type fixtureView struct {
		Week     int    `json:"week"`
		HomeID   string `json:"home_id"`
		HomeName string `json:"home_name"`
		AwayID   string `json:"away_id"`
		AwayName string `json:"away_name"`
	}
	var fixtures []fixtureView
	for week, round := range rounds {
		for _, f := range round {
			fixtures = append(fixtures, fixtureView{
				Week:     week + 1,
				HomeID:   f.Home.ID,
				HomeName: f.Home.Name,
				AwayID:   f.Away.ID,
				AwayName: f.Away.Name,
			})
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"division":  division,
		"fixtures":  fixtures,
		"count":     len(fixtures),
		"timestamp": time.Now(),
	})
}

func (s *server) getAllClubs(w http.ResponseWriter, r *http.Request) {
	clubs := s.engine.AllClubs()
	type clubSummary struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Division string `json:"division"`
		Cash     int    `json:"cash"`
		Points   int    `json:"points"`
		Squad    int    `json:"squad_size"`
	}
	summaries := make([]clubSummary, 0, len(clubs))
	for _, c := range clubs {
		summaries = append(summaries, clubSummary{
			ID: c.ID, Name: c.Name, Division: c.Division,
			Cash: c.Cash, Points: c.Points, Squad: len(c.Squad),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clubs":     summaries,
		"count":     len(summaries),
		"timestamp": time.Now(),
	})
}

func (s *server) getClub(w http.ResponseWriter, r *http.Request) {
	club := s.engine.ClubByID(mux.Vars(r)["id"])
	if club == nil {
		writeError(w, http.StatusNotFound, "Club not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"club":      club,
		"wage_bill": club.WageBill(),
		"timestamp": time.Now(),
	})
}

func (s *server) getClubSquad(w http.ResponseWriter, r *http.Request) {
	club := s.engine.ClubByID(mux.Vars(r)["id"])
	if club == nil {
		writeError(w, http.StatusNotFound, "Club not found")
		return
	}

	type playerView struct {
		*Player
		Overall int `json:"overall"`
		Value   int `json:"value"`
	}
	squad := make([]playerView, 0, len(club.Squad))
	for _, p := range club.Squad {
		squad = append(squad, playerView{Player: p, Overall: p.Overall(), Value: p.Value()})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"club":      club.Name,
		"squad":     squad,
		"count":     len(squad),
		"timestamp": time.Now(),
	})
}

func (s *server) getResults(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	results := s.engine.Results(limit)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results":   results,
		"count":     len(results),
		"timestamp": time.Now(),
	})
}

func (s *server) getRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records":   s.engine.RecordBook(),
		"timestamp": time.Now(),
	})
}

func (s *server) postManageClub(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.engine.SelectClub(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	club := s.engine.ClubByID(id)
	logInfo("🧢 Now managing %s", club.Name)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"managing":  club.Name,
		"club_id":   club.ID,
		"timestamp": time.Now(),
	})
}

func (s *server) postAdvanceWeek(w http.ResponseWriter, r *http.Request) {
	results, seasonEnded, err := s.engine.AdvanceWeek()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	season, week, _, _ := s.engine.SeasonInfo()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results":      results,
		"count":        len(results),
		"season_ended": seasonEnded,
		"season":       season,
		"week":         week,
		"timestamp":    time.Now(),
	})
}

func (s *server) postSimulateSeason(w http.ResponseWriter, r *http.Request) {
	played, err := s.engine.SimulateSeason()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	season, _, _, _ := s.engine.SeasonInfo()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches_played": played,
		"season":         season,
		"timestamp":      time.Now(),
	})
}

func (s *server) postSaveGame(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.SaveGame(s.settings.SaveFile); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"saved_to":  s.settings.SaveFile,
		"timestamp": time.Now(),
	})
}

func (s *server) postLoadGame(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.LoadGame(s.settings.SaveFile); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	season, week, _, _ := s.engine.SeasonInfo()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"loaded_from": s.settings.SaveFile,
		"season":      season,
		"week":        week,
		"timestamp":   time.Now(),
	})
}

func (s *server) serveHomepage(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.New("homepage").Parse(htmlTemplate)
	if err != nil {
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	season, week, weeksTotal, year := s.engine.SeasonInfo()
	data := map[string]interface{}{
		"Version":    version,
		"Season":     season,
		"Week":       week,
		"WeeksTotal": weeksTotal,
		"Year":       year,
		"Clubs":      len(s.engine.AllClubs()),
		"Divisions":  len(divisions),
	}

	w.Header().Set("Content-Type", "text/html")
	tmpl.Execute(w, data)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if r.URL.Path != "/api/v1/health" {
			log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
		}
	})
}

func newRouter(s *server) http.Handler {
	router := mux.NewRouter()
	router.Use(requestLogger)

	router.HandleFunc("/", s.serveHomepage).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// System endpoints
	api.HandleFunc("/health", s.healthCheck).Methods("GET")

	// Season endpoints
	api.HandleFunc("/seasons/current", s.getCurrentSeason).Methods("GET")
	api.HandleFunc("/seasons/history", s.getSeasonHistory).Methods("GET")
	api.HandleFunc("/seasons/simulate", s.postSimulateSeason).Methods("POST")

	// Division endpoints
	api.HandleFunc("/divisions", s.getDivisions).Methods("GET")
	api.HandleFunc("/divisions/{division}/table", s.getDivisionTable).Methods("GET")
	api.HandleFunc("/divisions/{division}/fixtures", s.getDivisionFixtures).Methods("GET")

	// Club endpoints
	api.HandleFunc("/clubs", s.getAllClubs).Methods("GET")
	api.HandleFunc("/clubs/{id}", s.getClub).Methods("GET")
	api.HandleFunc("/clubs/{id}/squad", s.getClubSquad).Methods("GET")

	// Results and records
	api.HandleFunc("/results", s.getResults).Methods("GET")
	api.HandleFunc("/records", s.getRecords).Methods("GET")

	// Commands
	api.HandleFunc("/manage/{id}", s.postManageClub).Methods("POST")
	api.HandleFunc("/advance", s.postAdvanceWeek).Methods("POST")
	api.HandleFunc("/save", s.postSaveGame).Methods("POST")
	api.HandleFunc("/load", s.postLoadGame).Methods("POST")

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(router)
}

// runAutoAdvance plays one week per tick, rolling through seasons forever
func runAutoAdvance(engine *GameEngine, interval time.Duration) {
	logInfo("⏱️  Auto-advance enabled: one week every %s", interval)
	for range time.Tick(interval) {
		results, seasonEnded, err := engine.AdvanceWeek()
		if err != nil {
			log.Printf("auto-advance: %v", err)
			continue
		}
		if seasonEnded {
			logInfo("⏱️  Auto-advance rolled into a new season (%d matches played)", len(results))
		}
	}
}

func main() {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		log.Fatalf("❌ Failed to parse settings: %v", err)
	}
	if settings.BaseURL == "" {
		settings.BaseURL = fmt.Sprintf("http://0.0.0.0:%s", settings.Port)
	}

	engine := newGameEngine(settings.Seed)
	if err := engine.initializeWorld(); err != nil {
		log.Fatalf("❌ Failed to initialize world: %v", err)
	}

	s := &server{engine: engine, settings: settings, startTime: time.Now()}
	handler := newRouter(s)

	if settings.AutoAdvance > 0 {
		go runAutoAdvance(engine, settings.AutoAdvance)
	}

	fmt.Printf("🚀 CricSim API v%s starting on port %s\n", version, settings.Port)
	fmt.Printf("📚 API Documentation: %s/\n", settings.BaseURL)
	fmt.Printf("🏥 Health Check: %s/api/v1/health\n", settings.BaseURL)
	fmt.Printf("🏅 Division Table: %s/api/v1/divisions/Division%%201/table\n", settings.BaseURL)
	fmt.Printf("📅 Fixtures: %s/api/v1/divisions/Division%%201/fixtures\n", settings.BaseURL)
	fmt.Printf("🏏 Results: %s/api/v1/results\n", settings.BaseURL)
	fmt.Printf("🏆 Records: %s/api/v1/records\n", settings.BaseURL)
	fmt.Printf("⏩ Advance Week: POST %s/api/v1/advance\n", settings.BaseURL)

	log.Fatal(http.ListenAndServe("0.0.0.0:"+settings.Port, handler))
}
