package metrics

import (
	"context"
	"fmt"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/models/store"
)

const (
	MetricSearchKeywords    = "search_keywords"
	MetricSearchAvgPosition = "search_avg_position"
	MetricSearchTop3        = "search_top3"
	MetricSearchTop10       = "search_top10"
	MetricSearchTraffic     = "search_traffic"
)

type searchAnalyzer struct {
	source SearchSource
}

// NewSearchAnalyzer builds the organic-search ranking analyzer.
func NewSearchAnalyzer(source SearchSource) Analyzer {
	return &searchAnalyzer{source: source}
}

func (a *searchAnalyzer) Domain() domain.Domain {
	return domain.DomainOrganicSearch
}

func (a *searchAnalyzer) Aggregate(ctx context.Context, entityID string, period domain.Period) (Snapshot, error) {
	samples, err := a.source.GetKeywordRanks(ctx, entityID, period.Start, period.End)
	if err != nil {
		return Snapshot{}, fmt.Errorf("keyword ranks for %s: %w", entityID, err)
	}

	// A keyword may be sampled several times in-period; only its latest
	// sample counts toward position, band counts and traffic.
	latest := make(map[string]store.KeywordRank)
	for _, s := range samples {
		cur, ok := latest[s.Keyword]
		if !ok || s.OccurredAt.After(cur.OccurredAt) {
			latest[s.Keyword] = s
		}
	}

	var positionSum, traffic float64
	var top3, top10 int
	for _, s := range latest {
		positionSum += s.Position
		traffic += s.EstimatedTraffic
		if s.Position <= 3 {
			top3++
		}
		if s.Position <= 10 {
			top10++
		}
	}

	var avgPosition float64
	if len(latest) > 0 {
		avgPosition = positionSum / float64(len(latest))
	}

	return Snapshot{
		Aggregate: domain.Aggregate{
			Domain:  domain.DomainOrganicSearch,
			HasData: len(samples) > 0,
			Metrics: map[string]float64{
				MetricSearchKeywords:    float64(len(latest)),
				MetricSearchAvgPosition: avgPosition,
				MetricSearchTop3:        float64(top3),
				MetricSearchTop10:       float64(top10),
				MetricSearchTraffic:     traffic,
			},
		},
		Keywords: samples,
	}, nil
}
