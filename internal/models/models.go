package models

import "time"

type Pillar string

const (
	PillarMove    Pillar = "move"
	PillarRecover Pillar = "recover"
	PillarFuel    Pillar = "fuel"
	PillarConnect Pillar = "connect"
	PillarBreathe Pillar = "breathe"
	PillarMisc    Pillar = "misc"
)

// Pillars lists the six pillars in display order.
var Pillars = []Pillar{PillarMove, PillarRecover, PillarFuel, PillarConnect, PillarBreathe, PillarMisc}

func (p Pillar) Valid() bool {
	switch p {
	case PillarMove, PillarRecover, PillarFuel, PillarConnect, PillarBreathe, PillarMisc:
		return true
	}
	return false
}

type Period string

const (
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodAnnual    Period = "annual"
)

type Client struct {
	ID         string
	Name       string
	Title      string
	CoachNote  string
	Phase      int
	StartDate  string
	ShareToken string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ActionItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Goal struct {
	ID          string
	ClientID    string
	Pillar      Pillar
	Goal        string
	TargetDate  string
	ActionItems []ActionItem
	SortOrder   int
	CreatedAt   time.Time
}

// ScheduledTask is one day's assigned work for a client. Date is a
// day-granularity key in YYYY-MM-DD form.
type ScheduledTask struct {
	ID        string
	ClientID  string
	Date      string
	Pillar    Pillar
	Category  string
	Title     string
	Points    int
	Notes     string
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeeklyPointRecord holds one ISO week's point totals per pillar.
// Week is an ISO week key (YYYY-W##); Label is the human-readable
// Monday–Sunday range for that week.
type WeeklyPointRecord struct {
	Week    string
	Label   string
	Move    int
	Recover int
	Fuel    int
	Connect int
	Breathe int
	Misc    int
}

// Total is the sum of all six pillar totals.
func (w WeeklyPointRecord) Total() int {
	return w.Move + w.Recover + w.Fuel + w.Connect + w.Breathe + w.Misc
}

// PillarTotal returns the record's total for a single pillar.
func (w WeeklyPointRecord) PillarTotal(p Pillar) int {
	switch p {
	case PillarMove:
		return w.Move
	case PillarRecover:
		return w.Recover
	case PillarFuel:
		return w.Fuel
	case PillarConnect:
		return w.Connect
	case PillarBreathe:
		return w.Breathe
	case PillarMisc:
		return w.Misc
	}
	return 0
}

type WeeklyRate struct {
	Label string
	Rate  int
	Done  int
	Total int
}

// ComplianceSummary is derived from scheduled tasks on every call;
// it is never persisted.
type ComplianceSummary struct {
	Overall     int
	RecentRate  int
	WeeklyRates []WeeklyRate
}

// MomentumResult compares the older and newer halves of the trailing
// four-week window.
type MomentumResult struct {
	PercentChange int
	IsUp          bool
	WindowSize    int
}

type PERMSScores struct {
	P float64 `json:"P"`
	E float64 `json:"E"`
	R float64 `json:"R"`
	M float64 `json:"M"`
	S float64 `json:"S"`
}

type PERMSEntry struct {
	ID         string
	ClientID   string
	Quarter    string
	AssessedAt string
	Scores     PERMSScores
	CreatedAt  time.Time
}

type CoachNote struct {
	ID        string
	ClientID  string
	WeekISO   string
	WeekLabel string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Event struct {
	ID        string
	ClientID  string
	Date      string
	Title     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
