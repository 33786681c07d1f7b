package contracts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
)

// Store resolves the contracted metric domains of an entity. The engine
// treats this set as the hard boundary of what it may aggregate.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Store{db: db}, nil
}

func (s *Store) GetContractedDomains(ctx context.Context, entityID string) ([]domain.Domain, error) {
	query := `SELECT domain FROM entity_contracts WHERE entity_id = ? ORDER BY domain`

	rows, err := s.db.QueryContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}
	defer rows.Close()

	var domains []domain.Domain
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		domains = append(domains, domain.Domain(d))
	}
	return domains, rows.Err()
}
