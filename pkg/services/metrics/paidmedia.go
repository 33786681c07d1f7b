package metrics

import (
	"context"
	"fmt"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	MetricAdsSpendTotal   = "ads_spend_total"
	MetricAdsImpressions  = "ads_impressions"
	MetricAdsClicks       = "ads_clicks"
	MetricAdsLeads        = "ads_leads"
	MetricAdsCTR          = "ads_ctr"
	MetricAdsCPC          = "ads_cpc"
	MetricAdsRecords      = "ads_records"
	metricAdsSpendPrefix = "ads_spend_"
)

type paidMediaAnalyzer struct {
	source AdsSource
}

// NewPaidMediaAnalyzer builds the paid-media spend analyzer.
func NewPaidMediaAnalyzer(source AdsSource) Analyzer {
	return &paidMediaAnalyzer{source: source}
}

func (a *paidMediaAnalyzer) Domain() domain.Domain {
	return domain.DomainPaidMedia
}

// SpendKey returns the per-platform spend metric name, e.g. ads_spend_meta.
func SpendKey(platform string) string {
	return metricAdsSpendPrefix + platform
}

func (a *paidMediaAnalyzer) Aggregate(ctx context.Context, entityID string, period domain.Period) (Snapshot, error) {
	records, err := a.source.GetAdRecords(ctx, entityID, period.Start, period.End)
	if err != nil {
		return Snapshot{}, fmt.Errorf("ad records for %s: %w", entityID, err)
	}

	// Spend is money: summed as decimals, converted once at the end.
	total := decimal.Zero
	perPlatform := make(map[string]decimal.Decimal)
	var impressions, clicks, leads int64
	for _, r := range records {
		spend := decimal.NewFromFloat(r.Spend)
		total = total.Add(spend)
		perPlatform[r.Platform] = perPlatform[r.Platform].Add(spend)
		impressions += r.Impressions
		clicks += r.Clicks
		leads += r.Leads
	}

	var ctr, cpc float64
	if impressions > 0 {
		ctr = float64(clicks) / float64(impressions) * 100
	}
	if clicks > 0 {
		cpc, _ = total.Div(decimal.NewFromInt(clicks)).Float64()
	}

	totalSpend, _ := total.Float64()
	m := map[string]float64{
		MetricAdsSpendTotal:  totalSpend,
		MetricAdsImpressions: float64(impressions),
		MetricAdsClicks:      float64(clicks),
		MetricAdsLeads:       float64(leads),
		MetricAdsCTR:         ctr,
		MetricAdsCPC:         cpc,
		MetricAdsRecords:     float64(len(records)),
	}
	for platform, spend := range perPlatform {
		v, _ := spend.Float64()
		m[SpendKey(platform)] = v
	}

	return Snapshot{
		Aggregate: domain.Aggregate{
			Domain:  domain.DomainPaidMedia,
			HasData: len(records) > 0,
			Metrics: m,
		},
		Ads: records,
	}, nil
}
