package contracts

import (
	"context"
	"testing"

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

func TestStore_GetContractedDomains(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"domain"}).
		AddRow("organic_search").
		AddRow("social")

	mock.ExpectQuery("SELECT domain FROM entity_contracts").
		WithArgs("brand-1").
		WillReturnRows(rows)

	domains, err := s.GetContractedDomains(context.Background(), "brand-1")
	require.NoError(t, err)

	assert.Equal(t, []domain.Domain{domain.DomainOrganicSearch, domain.DomainSocial}, domains)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetContractedDomains_Empty(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT domain FROM entity_contracts").
		WithArgs("brand-9").
		WillReturnRows(sqlmock.NewRows([]string{"domain"}))

	domains, err := s.GetContractedDomains(context.Background(), "brand-9")
	require.NoError(t, err)
	assert.Empty(t, domains)
}
