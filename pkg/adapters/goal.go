package adapters

import (
	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/models/store"
)

func MapStoreGoalToDomain(row store.GoalRow) domain.Goal {
	return domain.Goal{
		ID:        row.ID,
		EntityID:  row.EntityID,
		Name:      row.Name,
		Baseline:  row.Baseline,
		Target:    row.Target,
		Current:   row.Current,
		Direction: domain.GoalDirection(row.Direction),
		Start:     row.PeriodStart,
		End:       row.PeriodEnd,
	}
}
