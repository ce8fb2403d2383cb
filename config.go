package main

import "time"

// String constants for optimization
const (
	// Divisions
	DivisionOne   = "Division 1"
	DivisionTwo   = "Division 2"
	DivisionThree = "Division 3"

	// League configuration
	TeamsPerDivision = 10
	MatchesPerSeason = 18 // Double round robin
	PromotionZones   = 2
	RelegationZones  = 2
	PointsWin        = 2
	PointsTie        = 1
	PointsLoss       = 0

	// Form results
	FormWin  = "W"
	FormLoss = "L"
	FormTie  = "T"

	// Economy (in $K)
	WageBudgetRatio = 1.2 // Headroom over the current wage bill
	MinWage         = 10  // Minimum wage per season in $K
	MatchFee        = 0.5 // Pay per squad member per match
	TicketPriceBase = 20  // Avg ticket price

	// Player generation
	AttrStd    = 10
	AgeMin     = 18
	AgeMax     = 35
	SquadSize  = 18
	YouthAge   = 16
	MinSkill   = 10
	MaxSkill   = 99
	MaxFitness = 100

	// Match engine
	OversPerInnings = 20
	BallsPerOver    = 6
	WicketsPerSide  = 10
	PlayersPerSide  = 11
	MinBowlers      = 5

	// Development & aging
	RetirementMean    = 36
	DevelopmentFactor = 2.0 // Multiplier for growth
	DeclineFactor     = 3.0 // Multiplier for aging decline

	// Transfers
	TransferMarketMarkup = 1.2 // AI buying markup
	TransferListMinSquad = 15  // Clubs above this size list players
	TransferBuyerFloor   = 500 // Minimum cash to enter the market

	// History limits
	MaxFormEntries = 5
	MaxLogEntries  = 1000 // Maximum log entries to keep

	// Snapshot
	SnapshotVersion = 1
)

var divisions = []string{DivisionOne, DivisionTwo, DivisionThree}

// Starting cash mean per division (in $K)
var startingCashMean = map[string]int{
	DivisionOne:   5000,
	DivisionTwo:   2000,
	DivisionThree: 500,
}

// Prize money for the top 3 finishers per division (in $K)
var prizeMoney = map[string][]int{
	DivisionOne:   {2000, 1000, 500},
	DivisionTwo:   {800, 400, 200},
	DivisionThree: {300, 150, 75},
}

// Flat streaming revenue per club per season (in $K)
var ottRevenueBase = map[string]int{
	DivisionOne:   1500,
	DivisionTwo:   500,
	DivisionThree: 100,
}

// Mean skill attribute for generated players per division
var attrMean = map[string]int{
	DivisionOne:   75,
	DivisionTwo:   60,
	DivisionThree: 45,
}

// AgingCurve describes the career arc of a role
type AgingCurve struct {
	PeakStart int `json:"peak_start"`
	PeakEnd   int `json:"peak_end"`
	Decline   int `json:"decline"`
}

var agingCurves = map[Role]AgingCurve{
	RolePaceBowler:   {PeakStart: 24, PeakEnd: 28, Decline: 31},
	RoleBatsman:      {PeakStart: 27, PeakEnd: 32, Decline: 34},
	RoleSpinBowler:   {PeakStart: 29, PeakEnd: 34, Decline: 36},
	RoleAllrounder:   {PeakStart: 26, PeakEnd: 30, Decline: 32},
	RoleWicketkeeper: {PeakStart: 26, PeakEnd: 31, Decline: 33},
}

// Settings holds runtime configuration bound from the environment
type Settings struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	BaseURL     string        `env:"BASE_URL"`
	Seed        int64         `env:"SEED" envDefault:"0"`
	SaveFile    string        `env:"SAVE_FILE" envDefault:"savegame.json"`
	AutoAdvance time.Duration `env:"AUTO_ADVANCE" envDefault:"0"` // 0 disables the background clock
}
