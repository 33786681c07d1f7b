package api

import "time"

// CompileReportRequest is the inbound payload for a compile invocation.
type CompileReportRequest struct {
	Cadence     string     `json:"cadence"`
	CustomStart *time.Time `json:"custom_start,omitempty"`
	CustomEnd   *time.Time `json:"custom_end,omitempty"`
	// Narrative opts in to best-effort AI enrichment for structured cadences.
	Narrative bool `json:"narrative,omitempty"`
}

type Period struct {
	Cadence string    `json:"cadence"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

type Delta struct {
	Current   float64  `json:"current"`
	Previous  float64  `json:"previous"`
	Change    float64  `json:"change"`
	PctChange *float64 `json:"pct_change"`
	Trend     string   `json:"trend"`
}

type RankedItem struct {
	Rank  int     `json:"rank"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type BreakdownGroup struct {
	Category string             `json:"category"`
	Count    int                `json:"count"`
	Averages map[string]float64 `json:"averages"`
}

type Section struct {
	Domain      string             `json:"domain"`
	Metrics     map[string]float64 `json:"metrics"`
	Rankings    []RankedItem       `json:"rankings,omitempty"`
	Breakdown   []BreakdownGroup   `json:"breakdown,omitempty"`
	Comparisons map[string]Delta   `json:"comparisons,omitempty"`
}

type Report struct {
	ID          string             `json:"id"`
	EntityID    string             `json:"entity_id"`
	Cadence     string             `json:"cadence"`
	Period      Period             `json:"period"`
	Sections    map[string]Section `json:"sections"`
	BigNumbers  map[string]float64 `json:"big_numbers"`
	StatusColor string             `json:"status_color"`
	Narrative   *string            `json:"narrative,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type CheckinDigest struct {
	EntityID string `json:"entity_id"`
	Period   Period `json:"period"`
	Text     string `json:"text"`
}

type GoalStatus struct {
	ObjectiveID string  `json:"objective_id"`
	Name        string  `json:"name"`
	Progress    int     `json:"progress"`
	ElapsedPct  float64 `json:"elapsed_pct"`
	Status      string  `json:"status"`
}

type Error struct {
	Error string `json:"error"`
}
