package metrics

import (
	"context"
	"fmt"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
)

// Flat metric keys emitted by the social analyzer. These names are part of
// the persisted big-numbers contract; renaming one breaks comparison against
// historical reports.
const (
	MetricSocialPosts           = "social_posts"
	MetricSocialLikes           = "social_likes"
	MetricSocialComments        = "social_comments"
	MetricSocialSaves           = "social_saves"
	MetricSocialShares          = "social_shares"
	MetricSocialViews           = "social_views"
	MetricSocialFollowers       = "social_followers"
	MetricSocialFollowersGrowth = "social_followers_growth"
	MetricEngagementRate        = "engagement_rate"
	// MetricOrganicReach reuses total views as a stand-in for reach. Known
	// upstream simplification; the two are distinct metrics.
	MetricOrganicReach = "social_organic_reach"
)

type socialAnalyzer struct {
	source SocialSource
}

// NewSocialAnalyzer builds the social-engagement analyzer.
func NewSocialAnalyzer(source SocialSource) Analyzer {
	return &socialAnalyzer{source: source}
}

func (a *socialAnalyzer) Domain() domain.Domain {
	return domain.DomainSocial
}

func (a *socialAnalyzer) Aggregate(ctx context.Context, entityID string, period domain.Period) (Snapshot, error) {
	posts, err := a.source.GetPosts(ctx, entityID, period.Start, period.End)
	if err != nil {
		return Snapshot{}, fmt.Errorf("social posts for %s: %w", entityID, err)
	}

	var likes, comments, saves, shares, views int64
	for _, p := range posts {
		likes += p.Likes
		comments += p.Comments
		saves += p.Saves
		shares += p.Shares
		views += p.Views
	}

	samples, err := a.source.GetFollowerSamples(ctx, entityID, 2)
	if err != nil {
		return Snapshot{}, fmt.Errorf("follower samples for %s: %w", entityID, err)
	}
	var followers, growth int64
	if len(samples) > 0 {
		followers = samples[0].Followers
	}
	if len(samples) > 1 {
		growth = samples[0].Followers - samples[1].Followers
	}

	engagements := likes + comments + saves + shares
	var engagementRate float64
	if len(posts) > 0 && followers > 0 {
		engagementRate = float64(engagements) / float64(len(posts)) / float64(followers) * 100
	}

	return Snapshot{
		Aggregate: domain.Aggregate{
			Domain:  domain.DomainSocial,
			HasData: len(posts) > 0,
			Metrics: map[string]float64{
				MetricSocialPosts:           float64(len(posts)),
				MetricSocialLikes:           float64(likes),
				MetricSocialComments:        float64(comments),
				MetricSocialSaves:           float64(saves),
				MetricSocialShares:          float64(shares),
				MetricSocialViews:           float64(views),
				MetricSocialFollowers:       float64(followers),
				MetricSocialFollowersGrowth: float64(growth),
				MetricEngagementRate:        engagementRate,
				MetricOrganicReach:          float64(views),
			},
		},
		Posts: posts,
	}, nil
}
