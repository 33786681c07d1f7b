package domain

import "time"

// Cadence is the reporting period type.
type Cadence string

const (
	CadenceWeeklyCheckin   Cadence = "weekly_checkin"
	CadenceWeeklyReport    Cadence = "weekly_report"
	CadenceMonthlyReport   Cadence = "monthly_report"
	CadenceQuarterlyReport Cadence = "quarterly_report"
	CadenceAnnualReport    Cadence = "annual_report"
)

// Cadences lists every supported cadence.
func Cadences() []Cadence {
	return []Cadence{
		CadenceWeeklyCheckin,
		CadenceWeeklyReport,
		CadenceMonthlyReport,
		CadenceQuarterlyReport,
		CadenceAnnualReport,
	}
}

// Period is a concrete reporting window. Start and End are calendar dates
// (midnight UTC); Start is always strictly before End.
type Period struct {
	Cadence Cadence
	Start   time.Time
	End     time.Time
}

// HealthColor is the traffic-light classification of a report.
type HealthColor string

const (
	HealthGreen  HealthColor = "green"
	HealthYellow HealthColor = "yellow"
	HealthRed    HealthColor = "red"
)

// Report is the engine's primary output artifact. Reports are append-only:
// one row per compile invocation, never mutated after creation.
type Report struct {
	ID       string
	EntityID string
	Cadence  Cadence
	Period   Period

	// Sections holds the structured per-domain output for tabbed consumers.
	Sections map[Domain]Section

	// BigNumbers is the flat snapshot persisted for future period-over-period
	// comparison. It must contain every metric a later Comparator run might
	// need, not just what the current UI shows.
	BigNumbers map[string]float64

	StatusColor HealthColor
	Narrative   *string
	CreatedAt   time.Time
}

// Section is one domain's structured slice of a report.
type Section struct {
	Domain      Domain
	Metrics     map[string]float64
	Rankings    []RankedItem
	Breakdown   []BreakdownGroup
	Comparisons map[string]Delta
}

// RankedItem is one entry of a top-N ranking inside a section.
type RankedItem struct {
	Rank  int
	Label string
	Value float64
}

// BreakdownGroup is one bucket of a categorical breakdown: record count plus
// per-metric averages for the bucket.
type BreakdownGroup struct {
	Category string
	Count    int
	Averages map[string]float64
}
