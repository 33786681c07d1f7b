package activity

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mk-tools/brand-atlas/pkg/models/store"
)

// Store reads ingested raw activity records. Writes happen in the excluded
// ingestion subsystem; this side is read-only.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Store{db: db}, nil
}

func (s *Store) GetPosts(ctx context.Context, entityID string, start, end time.Time) ([]store.SocialPost, error) {
	query := `
		SELECT id, entity_id, platform, post_type, caption,
		       likes, comments, saves, shares, views, occurred_at
		FROM social_posts
		WHERE entity_id = ? AND occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at`

	rows, err := s.db.QueryContext(ctx, query, entityID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query social posts: %w", err)
	}
	defer rows.Close()

	var posts []store.SocialPost
	for rows.Next() {
		var p store.SocialPost
		if err := rows.Scan(&p.ID, &p.EntityID, &p.Platform, &p.PostType, &p.Caption,
			&p.Likes, &p.Comments, &p.Saves, &p.Shares, &p.Views, &p.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan social post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *Store) GetFollowerSamples(ctx context.Context, entityID string, limit int) ([]store.FollowerSample, error) {
	query := `
		SELECT entity_id, platform, followers, sampled_at
		FROM follower_samples
		WHERE entity_id = ?
		ORDER BY sampled_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("query follower samples: %w", err)
	}
	defer rows.Close()

	var samples []store.FollowerSample
	for rows.Next() {
		var f store.FollowerSample
		if err := rows.Scan(&f.EntityID, &f.Platform, &f.Followers, &f.SampledAt); err != nil {
			return nil, fmt.Errorf("scan follower sample: %w", err)
		}
		samples = append(samples, f)
	}
	return samples, rows.Err()
}

func (s *Store) GetAdRecords(ctx context.Context, entityID string, start, end time.Time) ([]store.AdRecord, error) {
	query := `
		SELECT id, entity_id, platform, campaign, ad_name,
		       spend, impressions, clicks, leads, occurred_at
		FROM ad_records
		WHERE entity_id = ? AND occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at`

	rows, err := s.db.QueryContext(ctx, query, entityID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query ad records: %w", err)
	}
	defer rows.Close()

	var records []store.AdRecord
	for rows.Next() {
		var r store.AdRecord
		if err := rows.Scan(&r.ID, &r.EntityID, &r.Platform, &r.Campaign, &r.AdName,
			&r.Spend, &r.Impressions, &r.Clicks, &r.Leads, &r.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan ad record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) GetKeywordRanks(ctx context.Context, entityID string, start, end time.Time) ([]store.KeywordRank, error) {
	query := `
		SELECT id, entity_id, keyword, position, estimated_traffic, occurred_at
		FROM keyword_ranks
		WHERE entity_id = ? AND occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at`

	rows, err := s.db.QueryContext(ctx, query, entityID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query keyword ranks: %w", err)
	}
	defer rows.Close()

	var samples []store.KeywordRank
	for rows.Next() {
		var k store.KeywordRank
		if err := rows.Scan(&k.ID, &k.EntityID, &k.Keyword, &k.Position, &k.EstimatedTraffic, &k.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan keyword rank: %w", err)
		}
		samples = append(samples, k)
	}
	return samples, rows.Err()
}
