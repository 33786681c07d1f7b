package reports

import (
	"context"
	"database/sql"
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

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestStore_Save(t *testing.T) {
	store, mock := newMockStore(t)

	narrative := "A strong week."
	r := &domain.Report{
		ID:       "rep-1",
		EntityID: "brand-1",
		Cadence:  domain.CadenceWeeklyReport,
		Period: domain.Period{
			Cadence: domain.CadenceWeeklyReport,
			Start:   time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		Sections: map[domain.Domain]domain.Section{
			domain.DomainSocial: {Domain: domain.DomainSocial, Metrics: map[string]float64{"social_likes": 500}},
		},
		BigNumbers:  map[string]float64{"social_likes": 500},
		StatusColor: domain.HealthGreen,
		Narrative:   &narrative,
		CreatedAt:   time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO reports").
		WithArgs(
			r.ID, r.EntityID, "weekly_report", r.Period.Start, r.Period.End,
			sqlmock.AnyArg(), sqlmock.AnyArg(), "green", narrative, r.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Save(context.Background(), r)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetLatest(t *testing.T) {
	store, mock := newMockStore(t)

	start := time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "entity_id", "cadence", "period_start", "period_end",
		"sections", "big_numbers", "status_color", "narrative", "created_at",
	}).AddRow(
		"rep-1", "brand-1", "weekly_report", start, end,
		[]byte(`{"social":{"domain":"social","metrics":{"social_likes":500}}}`),
		[]byte(`{"social_likes":500}`),
		"green", nil, created,
	)

	mock.ExpectQuery("SELECT (.+) FROM reports").
		WithArgs("brand-1", "weekly_report").
		WillReturnRows(rows)

	r, err := store.GetLatest(context.Background(), "brand-1", domain.CadenceWeeklyReport)
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, "rep-1", r.ID)
	assert.Equal(t, domain.CadenceWeeklyReport, r.Cadence)
	assert.Equal(t, domain.CadenceWeeklyReport, r.Period.Cadence)
	assert.Equal(t, domain.HealthGreen, r.StatusColor)
	assert.Equal(t, 500.0, r.BigNumbers["social_likes"])
	assert.Contains(t, r.Sections, domain.DomainSocial)
	assert.Nil(t, r.Narrative)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetLatest_NoRows(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM reports").
		WithArgs("brand-1", "monthly_report").
		WillReturnError(sql.ErrNoRows)

	r, err := store.GetLatest(context.Background(), "brand-1", domain.CadenceMonthlyReport)
	require.NoError(t, err)
	assert.Nil(t, r)
	assert.NoError(t, mock.ExpectationsWereMet())
}
