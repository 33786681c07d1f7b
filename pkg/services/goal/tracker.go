package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
)

// Store is the goal/measurement source. Implementations return the goal with
// its latest measured current value already applied.
type Store interface {
	GetGoal(ctx context.Context, objectiveID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, entityID string) ([]domain.Goal, error)
}

// Evaluation is a goal with its computed progress and status.
type Evaluation struct {
	Goal       domain.Goal
	Progress   int
	ElapsedPct float64
	Status     domain.GoalStatus
}

// Tracker evaluates objectives for the goal-tracking surface. It shares the
// classification contract with report health coloring.
type Tracker struct {
	store Store
	now   func() time.Time
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// WithClock overrides the tracker's clock; tests use this.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

func (t *Tracker) Evaluate(ctx context.Context, objectiveID string) (*Evaluation, error) {
	if objectiveID == "" {
		return nil, domain.NewConfigurationError("objective_id", "missing objective identifier")
	}
	g, err := t.store.GetGoal(ctx, objectiveID)
	if err != nil {
		return nil, fmt.Errorf("load goal %s: %w", objectiveID, err)
	}
	ev := t.evaluate(*g)
	return &ev, nil
}

func (t *Tracker) EvaluateAll(ctx context.Context, entityID string) ([]Evaluation, error) {
	if entityID == "" {
		return nil, domain.NewConfigurationError("entity_id", "missing entity identifier")
	}
	goals, err := t.store.ListGoals(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list goals for %s: %w", entityID, err)
	}
	evals := make([]Evaluation, 0, len(goals))
	for _, g := range goals {
		evals = append(evals, t.evaluate(g))
	}
	return evals, nil
}

func (t *Tracker) evaluate(g domain.Goal) Evaluation {
	progress := Progress(g.Baseline, g.Target, g.Current)
	elapsed := ElapsedPct(g.Start, g.End, t.now())
	return Evaluation{
		Goal:       g,
		Progress:   progress,
		ElapsedPct: elapsed,
		Status:     Status(progress, elapsed),
	}
}
