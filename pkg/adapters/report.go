package adapters

import (
	"maps"

	"github.com/mk-tools/brand-atlas/pkg/models/api"
	"github.com/mk-tools/brand-atlas/pkg/models/domain"
)

func MapPeriodDomainToApi(p domain.Period) api.Period {
	return api.Period{
		Cadence: string(p.Cadence),
		Start:   p.Start,
		End:     p.End,
	}
}

func MapDeltaDomainToApi(d domain.Delta) api.Delta {
	return api.Delta{
		Current:   d.Current,
		Previous:  d.Previous,
		Change:    d.Change,
		PctChange: d.PctChange,
		Trend:     string(d.Trend),
	}
}

func MapSectionDomainToApi(s domain.Section) api.Section {
	res := api.Section{
		Domain:  string(s.Domain),
		Metrics: maps.Clone(s.Metrics),
	}
	for _, r := range s.Rankings {
		res.Rankings = append(res.Rankings, api.RankedItem{Rank: r.Rank, Label: r.Label, Value: r.Value})
	}
	for _, b := range s.Breakdown {
		res.Breakdown = append(res.Breakdown, api.BreakdownGroup{
			Category: b.Category,
			Count:    b.Count,
			Averages: maps.Clone(b.Averages),
		})
	}
	if len(s.Comparisons) > 0 {
		res.Comparisons = make(map[string]api.Delta, len(s.Comparisons))
		for k, d := range s.Comparisons {
			res.Comparisons[k] = MapDeltaDomainToApi(d)
		}
	}
	return res
}

func MapReportDomainToApi(r *domain.Report) api.Report {
	res := api.Report{
		ID:          r.ID,
		EntityID:    r.EntityID,
		Cadence:     string(r.Cadence),
		Period:      MapPeriodDomainToApi(r.Period),
		Sections:    make(map[string]api.Section, len(r.Sections)),
		BigNumbers:  maps.Clone(r.BigNumbers),
		StatusColor: string(r.StatusColor),
		Narrative:   r.Narrative,
		CreatedAt:   r.CreatedAt,
	}
	for d, s := range r.Sections {
		res.Sections[string(d)] = MapSectionDomainToApi(s)
	}
	return res
}
