package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mk-tools/brand-atlas/pkg/models/store"
)

type mockSearchSource struct {
	mock.Mock
}

func (m *mockSearchSource) GetKeywordRanks(ctx context.Context, entityID string, start, end time.Time) ([]store.KeywordRank, error) {
	args := m.Called(ctx, entityID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.KeywordRank), args.Error(1)
}

func TestSearchAnalyzer_Aggregate(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	samples := []store.KeywordRank{
		{Keyword: "coffee beans", Position: 2, EstimatedTraffic: 400, OccurredAt: day(28)},
		{Keyword: "espresso machine", Position: 8, EstimatedTraffic: 120, OccurredAt: day(28)},
		{Keyword: "cold brew", Position: 15, EstimatedTraffic: 30, OccurredAt: day(28)},
	}

	source := &mockSearchSource{}
	source.On("GetKeywordRanks", mock.Anything, "brand-1", mock.Anything, mock.Anything).Return(samples, nil)

	snap, err := NewSearchAnalyzer(source).Aggregate(context.Background(), "brand-1", testPeriod())
	require.NoError(t, err)

	m := snap.Aggregate.Metrics
	assert.True(t, snap.Aggregate.HasData)
	assert.Equal(t, 3.0, m[MetricSearchKeywords])
	assert.InDelta(t, 25.0/3.0, m[MetricSearchAvgPosition], 1e-9)
	assert.Equal(t, 1.0, m[MetricSearchTop3])
	assert.Equal(t, 2.0, m[MetricSearchTop10])
	assert.Equal(t, 550.0, m[MetricSearchTraffic])
}

func TestSearchAnalyzer_LatestSampleWinsPerKeyword(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	// Same keyword sampled twice in-period; only the March 30 sample counts.
	samples := []store.KeywordRank{
		{Keyword: "coffee beans", Position: 12, EstimatedTraffic: 50, OccurredAt: day(25)},
		{Keyword: "coffee beans", Position: 3, EstimatedTraffic: 200, OccurredAt: day(30)},
	}

	source := &mockSearchSource{}
	source.On("GetKeywordRanks", mock.Anything, "brand-1", mock.Anything, mock.Anything).Return(samples, nil)

	snap, err := NewSearchAnalyzer(source).Aggregate(context.Background(), "brand-1", testPeriod())
	require.NoError(t, err)

	m := snap.Aggregate.Metrics
	assert.Equal(t, 1.0, m[MetricSearchKeywords])
	assert.Equal(t, 3.0, m[MetricSearchAvgPosition])
	assert.Equal(t, 1.0, m[MetricSearchTop3])
	assert.Equal(t, 200.0, m[MetricSearchTraffic])
}

func TestSearchAnalyzer_NoData(t *testing.T) {
	source := &mockSearchSource{}
	source.On("GetKeywordRanks", mock.Anything, "brand-1", mock.Anything, mock.Anything).Return([]store.KeywordRank{}, nil)

	snap, err := NewSearchAnalyzer(source).Aggregate(context.Background(), "brand-1", testPeriod())
	require.NoError(t, err)

	assert.False(t, snap.Aggregate.HasData)
	assert.Equal(t, 0.0, snap.Aggregate.Metrics[MetricSearchAvgPosition])
}
