package goals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mk-tools/brand-atlas/pkg/adapters"
	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/models/store"
)

// Store reads objectives and appends measurements. The reporting engine only
// reads; AddMeasurement serves the measurement-event surface.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Store{db: db}, nil
}

const goalColumns = `id, entity_id, name, baseline, target, current, direction, period_start, period_end`

func (s *Store) GetGoal(ctx context.Context, objectiveID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`

	var row store.GoalRow
	err := s.db.QueryRowContext(ctx, query, objectiveID).Scan(
		&row.ID, &row.EntityID, &row.Name, &row.Baseline, &row.Target,
		&row.Current, &row.Direction, &row.PeriodStart, &row.PeriodEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %s not found", objectiveID)
	}
	if err != nil {
		return nil, fmt.Errorf("query goal: %w", err)
	}

	g := adapters.MapStoreGoalToDomain(row)
	return &g, nil
}

func (s *Store) ListGoals(ctx context.Context, entityID string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE entity_id = ? ORDER BY period_end`

	rows, err := s.db.QueryContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var row store.GoalRow
		if err := rows.Scan(&row.ID, &row.EntityID, &row.Name, &row.Baseline, &row.Target,
			&row.Current, &row.Direction, &row.PeriodStart, &row.PeriodEnd); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, adapters.MapStoreGoalToDomain(row))
	}
	return goals, rows.Err()
}

// AddMeasurement appends a measurement event and moves the goal's current
// value forward. The measurement history itself stays append-only.
func (s *Store) AddMeasurement(ctx context.Context, objectiveID string, value float64, measuredAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO goal_measurements (goal_id, value, measured_at) VALUES (?, ?, ?)`,
		objectiveID, value, measuredAt); err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE goals SET current = ? WHERE id = ?`,
		value, objectiveID); err != nil {
		return fmt.Errorf("update goal current value: %w", err)
	}
	return tx.Commit()
}
