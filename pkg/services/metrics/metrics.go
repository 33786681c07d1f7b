package metrics

import (
	"context"
	"time"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/models/store"
)

// SocialSource reads ingested social activity for an entity.
type SocialSource interface {
	GetPosts(ctx context.Context, entityID string, start, end time.Time) ([]store.SocialPost, error)
	// GetFollowerSamples returns the most recent samples first. Samples are
	// not bounded to a period: the comparison baseline may predate it.
	GetFollowerSamples(ctx context.Context, entityID string, limit int) ([]store.FollowerSample, error)
}

// AdsSource reads ingested paid-media line items for an entity.
type AdsSource interface {
	GetAdRecords(ctx context.Context, entityID string, start, end time.Time) ([]store.AdRecord, error)
}

// SearchSource reads ingested keyword ranking samples for an entity.
type SearchSource interface {
	GetKeywordRanks(ctx context.Context, entityID string, start, end time.Time) ([]store.KeywordRank, error)
}

// Snapshot is one domain's aggregation output: the flat metrics plus the
// in-period records the section builder ranks and groups. Only the slice for
// the snapshot's own domain is populated.
type Snapshot struct {
	Aggregate domain.Aggregate
	Posts     []store.SocialPost
	Ads       []store.AdRecord
	Keywords  []store.KeywordRank
}

// Analyzer aggregates one metric domain over a period.
type Analyzer interface {
	Domain() domain.Domain
	Aggregate(ctx context.Context, entityID string, period domain.Period) (Snapshot, error)
}

// MergeBigNumbers flattens per-domain aggregates into the single comparable
// snapshot persisted with a report. Metric keys are domain-prefixed, so the
// merge is collision-free by construction.
func MergeBigNumbers(snapshots map[domain.Domain]Snapshot) map[string]float64 {
	merged := make(map[string]float64)
	for _, snap := range snapshots {
		for k, v := range snap.Aggregate.Metrics {
			merged[k] = v
		}
	}
	return merged
}
