package store

import "time"

// ReportRow is the persisted shape of a report. Sections and BigNumbers are
// stored as JSON documents.
type ReportRow struct {
	ID          string
	EntityID    string
	Cadence     string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Sections    []byte
	BigNumbers  []byte
	StatusColor string
	Narrative   *string
	CreatedAt   time.Time
}

// GoalRow is the persisted shape of an objective/key-result.
type GoalRow struct {
	ID          string
	EntityID    string
	Name        string
	Baseline    float64
	Target      float64
	Current     float64
	Direction   string
	PeriodStart time.Time
	PeriodEnd   time.Time
}
