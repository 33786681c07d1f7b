package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/models/store"
)

func newTestController(t *testing.T) Controller {
	t.Helper()

	social := &mockSocialSource{}
	social.On("GetPosts", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]store.SocialPost{{ID: "p1", Likes: 10}}, nil)
	social.On("GetFollowerSamples", mock.Anything, mock.Anything, 2).
		Return([]store.FollowerSample{{Followers: 1000}}, nil)

	ads := &mockAdsSource{}
	ads.On("GetAdRecords", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]store.AdRecord{{Platform: "meta", Spend: 100, Impressions: 1000, Clicks: 10}}, nil)

	search := &mockSearchSource{}
	search.On("GetKeywordRanks", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]store.KeywordRank{{Keyword: "coffee", Position: 4, EstimatedTraffic: 80}}, nil)

	c, err := NewController(
		NewSocialAnalyzer(social),
		NewPaidMediaAnalyzer(ads),
		NewSearchAnalyzer(search),
	)
	require.NoError(t, err)
	return c
}

func TestNewController_RejectsDuplicates(t *testing.T) {
	social := &mockSocialSource{}

	_, err := NewController(NewSocialAnalyzer(social), NewSocialAnalyzer(social))
	assert.Error(t, err)
}

func TestNewController_RequiresAnalyzers(t *testing.T) {
	_, err := NewController()
	assert.Error(t, err)
}

func TestController_Aggregate_UncontractedDomain(t *testing.T) {
	c := newTestController(t)

	_, err := c.Aggregate(context.Background(), "brand-1", testPeriod(),
		domain.DomainPaidMedia, []domain.Domain{domain.DomainSocial})

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "domain", cfgErr.Field)
}

func TestController_Aggregate_MissingEntityID(t *testing.T) {
	c := newTestController(t)

	_, err := c.Aggregate(context.Background(), "", testPeriod(),
		domain.DomainSocial, []domain.Domain{domain.DomainSocial})

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestController_AggregateAll_OnlyContracted(t *testing.T) {
	c := newTestController(t)
	contracted := []domain.Domain{domain.DomainSocial, domain.DomainOrganicSearch}

	snapshots, err := c.AggregateAll(context.Background(), "brand-1", testPeriod(), contracted)
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	assert.Contains(t, snapshots, domain.DomainSocial)
	assert.Contains(t, snapshots, domain.DomainOrganicSearch)
	assert.NotContains(t, snapshots, domain.DomainPaidMedia)

	// An uncontracted domain must leave no trace in the merged snapshot.
	merged := MergeBigNumbers(snapshots)
	assert.NotContains(t, merged, MetricAdsSpendTotal)
	assert.Contains(t, merged, MetricSocialPosts)
	assert.Contains(t, merged, MetricSearchKeywords)
}

func TestMergeBigNumbers(t *testing.T) {
	snapshots := map[domain.Domain]Snapshot{
		domain.DomainSocial: {Aggregate: domain.Aggregate{
			Domain:  domain.DomainSocial,
			Metrics: map[string]float64{MetricSocialPosts: 4, MetricEngagementRate: 2.5},
		}},
		domain.DomainPaidMedia: {Aggregate: domain.Aggregate{
			Domain:  domain.DomainPaidMedia,
			Metrics: map[string]float64{MetricAdsSpendTotal: 500},
		}},
	}

	merged := MergeBigNumbers(snapshots)

	assert.Len(t, merged, 3)
	assert.Equal(t, 4.0, merged[MetricSocialPosts])
	assert.Equal(t, 2.5, merged[MetricEngagementRate])
	assert.Equal(t, 500.0, merged[MetricAdsSpendTotal])
}
