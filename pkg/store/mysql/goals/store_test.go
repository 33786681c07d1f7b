package goals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewStore(db)
	require.NoError(t, err)
	return store, mock
}

func goalRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "entity_id", "name", "baseline", "target", "current",
		"direction", "period_start", "period_end",
	})
}

func TestStore_GetGoal(t *testing.T) {
	s, mock := newMockStore(t)

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM goals WHERE id").
		WithArgs("obj-1").
		WillReturnRows(goalRows().
			AddRow("obj-1", "brand-1", "Grow followers", 1000.0, 2000.0, 1500.0, "increase", start, end))

	g, err := s.GetGoal(context.Background(), "obj-1")
	require.NoError(t, err)

	assert.Equal(t, "obj-1", g.ID)
	assert.Equal(t, domain.DirectionIncrease, g.Direction)
	assert.Equal(t, 1500.0, g.Current)
	assert.Equal(t, start, g.Start)
}

func TestStore_GetGoal_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM goals WHERE id").
		WithArgs("missing").
		WillReturnRows(goalRows())

	_, err := s.GetGoal(context.Background(), "missing")
	assert.Error(t, err)
}

func TestStore_ListGoals(t *testing.T) {
	s, mock := newMockStore(t)

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM goals WHERE entity_id").
		WithArgs("brand-1").
		WillReturnRows(goalRows().
			AddRow("obj-1", "brand-1", "Grow followers", 1000.0, 2000.0, 1500.0, "increase", start, start.AddDate(0, 3, 0)).
			AddRow("obj-2", "brand-1", "Lower CPL", 40.0, 25.0, 32.0, "decrease", start, start.AddDate(0, 6, 0)))

	goals, err := s.ListGoals(context.Background(), "brand-1")
	require.NoError(t, err)

	require.Len(t, goals, 2)
	assert.Equal(t, domain.DirectionDecrease, goals[1].Direction)
}

func TestStore_AddMeasurement(t *testing.T) {
	s, mock := newMockStore(t)

	measuredAt := time.Date(2025, time.March, 31, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO goal_measurements").
		WithArgs("obj-1", 1600.0, measuredAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE goals SET current").
		WithArgs(1600.0, "obj-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.AddMeasurement(context.Background(), "obj-1", 1600, measuredAt)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AddMeasurement_RollsBackOnFailure(t *testing.T) {
	s, mock := newMockStore(t)

	measuredAt := time.Date(2025, time.March, 31, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO goal_measurements").
		WithArgs("obj-1", 1600.0, measuredAt).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := s.AddMeasurement(context.Background(), "obj-1", 1600, measuredAt)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
