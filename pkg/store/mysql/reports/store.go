package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
)

// Store persists compiled reports. Rows are append-only: there is no update
// path, a new compile always inserts a new row.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Store{db: db}, nil
}

func (s *Store) Save(ctx context.Context, r *domain.Report) error {
	sections, err := json.Marshal(r.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	bigNumbers, err := json.Marshal(r.BigNumbers)
	if err != nil {
		return fmt.Errorf("marshal big numbers: %w", err)
	}

	query := `
		INSERT INTO reports (
			id, entity_id, cadence, period_start, period_end,
			sections, big_numbers, status_color, narrative, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		r.ID,
		r.EntityID,
		string(r.Cadence),
		r.Period.Start,
		r.Period.End,
		sections,
		bigNumbers,
		string(r.StatusColor),
		r.Narrative,
		r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetLatest returns the most recent report of the given cadence, or
// (nil, nil) when the entity has none. Cadences never mix: a weekly snapshot
// is never served as a monthly baseline.
func (s *Store) GetLatest(ctx context.Context, entityID string, cadence domain.Cadence) (*domain.Report, error) {
	query := `
		SELECT id, entity_id, cadence, period_start, period_end,
		       sections, big_numbers, status_color, narrative, created_at
		FROM reports
		WHERE entity_id = ? AND cadence = ?
		ORDER BY created_at DESC
		LIMIT 1`

	row := s.db.QueryRowContext(ctx, query, entityID, string(cadence))

	var r domain.Report
	var cadenceStr, colorStr string
	var sections, bigNumbers []byte
	err := row.Scan(&r.ID, &r.EntityID, &cadenceStr, &r.Period.Start, &r.Period.End,
		&sections, &bigNumbers, &colorStr, &r.Narrative, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest report: %w", err)
	}

	r.Cadence = domain.Cadence(cadenceStr)
	r.Period.Cadence = r.Cadence
	r.StatusColor = domain.HealthColor(colorStr)
	if err := json.Unmarshal(sections, &r.Sections); err != nil {
		return nil, fmt.Errorf("unmarshal sections: %w", err)
	}
	if err := json.Unmarshal(bigNumbers, &r.BigNumbers); err != nil {
		return nil, fmt.Errorf("unmarshal big numbers: %w", err)
	}
	return &r, nil
}
