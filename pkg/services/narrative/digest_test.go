package narrative

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/services/metrics"
)

func digestPeriod() domain.Period {
	return domain.Period{
		Cadence: domain.CadenceWeeklyCheckin,
		Start:   time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
}

func fullSnapshots() map[domain.Domain]metrics.Snapshot {
	return map[domain.Domain]metrics.Snapshot{
		domain.DomainSocial: {Aggregate: domain.Aggregate{
			Domain:  domain.DomainSocial,
			HasData: true,
			Metrics: map[string]float64{
				metrics.MetricSocialPosts:     10,
				metrics.MetricSocialLikes:     500,
				metrics.MetricSocialFollowers: 1000,
				metrics.MetricEngagementRate:  5.5,
			},
		}},
		domain.DomainPaidMedia: {Aggregate: domain.Aggregate{
			Domain:  domain.DomainPaidMedia,
			HasData: true,
			Metrics: map[string]float64{
				metrics.MetricAdsSpendTotal: 500,
				metrics.MetricAdsClicks:     800,
			},
		}},
		domain.DomainOrganicSearch: {Aggregate: domain.Aggregate{
			Domain:  domain.DomainOrganicSearch,
			HasData: true,
			Metrics: map[string]float64{
				metrics.MetricSearchKeywords: 25,
				metrics.MetricSearchTraffic:  1200,
			},
		}},
	}
}

func TestDigest_Deterministic(t *testing.T) {
	snapshots := fullSnapshots()
	cmp := domain.Comparison{Deltas: map[string]domain.Delta{}}

	first := Digest(digestPeriod(), snapshots, cmp)
	second := Digest(digestPeriod(), snapshots, cmp)

	assert.Equal(t, first, second)
}

func TestDigest_BlockOrderAndContent(t *testing.T) {
	out := Digest(digestPeriod(), fullSnapshots(), domain.Comparison{})

	assert.True(t, strings.HasPrefix(out, "Check-in 2025-03-24 to 2025-03-31\n"))

	social := strings.Index(out, "Social\n")
	paid := strings.Index(out, "Paid media\n")
	search := strings.Index(out, "Organic search\n")
	require.NotEqual(t, -1, social)
	require.NotEqual(t, -1, paid)
	require.NotEqual(t, -1, search)
	assert.Less(t, social, paid)
	assert.Less(t, paid, search)

	assert.Contains(t, out, "- Posts published: 10\n")
	assert.Contains(t, out, "- Engagement rate: 5.50%\n")
	assert.Contains(t, out, "- Spend: 500.00\n")
	assert.Contains(t, out, "- Tracked keywords: 25\n")
}

func TestDigest_OmitsAbsentDomainBlocks(t *testing.T) {
	snapshots := fullSnapshots()
	delete(snapshots, domain.DomainPaidMedia)
	delete(snapshots, domain.DomainOrganicSearch)

	out := Digest(digestPeriod(), snapshots, domain.Comparison{})

	assert.Contains(t, out, "Social\n")
	assert.NotContains(t, out, "Paid media")
	assert.NotContains(t, out, "Organic search")
}

func TestDigest_GrowthLineOnlyWhenDefined(t *testing.T) {
	pct := 10.0
	cmp := domain.Comparison{
		HasPrevious: true,
		Deltas: map[string]domain.Delta{
			metrics.MetricEngagementRate: {Current: 5.5, Previous: 5.0, Change: 0.5, PctChange: &pct},
			metrics.MetricAdsSpendTotal:  {Current: 500, Previous: 0, Change: 500, PctChange: nil},
		},
	}

	out := Digest(digestPeriod(), fullSnapshots(), cmp)

	assert.Contains(t, out, "- Engagement rate change: +10.0%\n")
	assert.NotContains(t, out, "Spend change")
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(Request{
		BrandContext: "Specialty coffee roaster.",
		Cadence:      domain.CadenceMonthlyReport,
		Metrics:      map[string]float64{"social_likes": 500},
		Deltas:       map[string]domain.Delta{},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Specialty coffee roaster.")
	assert.Contains(t, prompt, "monthly_report")
	assert.Contains(t, prompt, `"social_likes":500`)
}
