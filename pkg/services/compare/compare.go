package compare

import "github.com/mk-tools/brand-atlas/pkg/models/domain"

// Snapshots diffs a current big-numbers snapshot against the previously
// persisted one of the same cadence. previous may be nil (no prior report);
// the result then carries HasPrevious=false and every percentage change is
// undefined. A zero or missing previous value also leaves PctChange nil —
// never 0, never an infinity.
func Snapshots(current, previous map[string]float64) domain.Comparison {
	cmp := domain.Comparison{
		HasPrevious: previous != nil,
		Deltas:      make(map[string]domain.Delta, len(current)),
	}
	for key, cur := range current {
		prev := previous[key]
		d := domain.Delta{
			Current:  cur,
			Previous: prev,
			Change:   cur - prev,
			Trend:    trend(cur - prev),
		}
		if cmp.HasPrevious && prev > 0 {
			pct := (cur - prev) / prev * 100
			d.PctChange = &pct
		}
		cmp.Deltas[key] = d
	}
	return cmp
}

func trend(change float64) domain.Trend {
	switch {
	case change > 0:
		return domain.TrendUp
	case change < 0:
		return domain.TrendDown
	default:
		return domain.TrendFlat
	}
}

// ForKeys filters a comparison down to the given metric keys. Sections use
// this to show only their own domain's growth figures.
func ForKeys(cmp domain.Comparison, keys []string) map[string]domain.Delta {
	out := make(map[string]domain.Delta, len(keys))
	for _, k := range keys {
		if d, ok := cmp.Deltas[k]; ok {
			out[k] = d
		}
	}
	return out
}
