package store

import "time"

// SocialPost is one ingested social activity record.
type SocialPost struct {
	ID         string
	EntityID   string
	Platform   string
	PostType   string // reel, carousel, static, story
	Caption    string
	Likes      int64
	Comments   int64
	Saves      int64
	Shares     int64
	Views      int64
	OccurredAt time.Time
}

// FollowerSample is a point-in-time follower count snapshot.
type FollowerSample struct {
	EntityID  string
	Platform  string
	Followers int64
	SampledAt time.Time
}

// AdRecord is one paid-media line item sample.
type AdRecord struct {
	ID          string
	EntityID    string
	Platform    string // meta, google
	Campaign    string
	AdName      string
	Spend       float64
	Impressions int64
	Clicks      int64
	Leads       int64
	OccurredAt  time.Time
}

// KeywordRank is one organic-search ranking sample for a tracked keyword.
type KeywordRank struct {
	ID               string
	EntityID         string
	Keyword          string
	Position         float64
	EstimatedTraffic float64
	OccurredAt       time.Time
}
