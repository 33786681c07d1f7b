package domain

import "time"

// GoalDirection says how a key result's current value relates to its target.
type GoalDirection string

const (
	DirectionIncrease GoalDirection = "increase"
	DirectionDecrease GoalDirection = "decrease"
	DirectionMaintain GoalDirection = "maintain"
	DirectionAchieve  GoalDirection = "achieve"
)

// GoalStatus is the time-aware classification of a goal's progress.
type GoalStatus string

const (
	StatusAchieved GoalStatus = "achieved"
	StatusOnTrack  GoalStatus = "on_track"
	StatusAtRisk   GoalStatus = "at_risk"
	StatusBehind   GoalStatus = "behind"
)

// Goal is an objective/key-result record. The engine only reads goals;
// measurement events append CurrentValue elsewhere.
type Goal struct {
	ID        string
	EntityID  string
	Name      string
	Baseline  float64
	Target    float64
	Current   float64
	Direction GoalDirection
	Start     time.Time
	End       time.Time
}
