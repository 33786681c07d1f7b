package section

import (
	"maps"
	"sort"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/models/store"
	"github.com/mk-tools/brand-atlas/pkg/services/compare"
	"github.com/mk-tools/brand-atlas/pkg/services/metrics"
)

const (
	topPostsLimit    = 10
	topAdsLimit      = 5
	topKeywordsLimit = 10
)

// Build assembles the structured per-domain sections of a report, plus the
// cross-domain summary. Only snapshots present in the input are sectioned;
// the summary is the one place every domain's numbers are merged flat.
func Build(
	snapshots map[domain.Domain]metrics.Snapshot,
	cmp domain.Comparison,
	bigNumbers map[string]float64,
) map[domain.Domain]domain.Section {
	sections := make(map[domain.Domain]domain.Section, len(snapshots)+1)

	for dom, snap := range snapshots {
		s := domain.Section{
			Domain:      dom,
			Metrics:     maps.Clone(snap.Aggregate.Metrics),
			Comparisons: compare.ForKeys(cmp, metricKeys(snap.Aggregate.Metrics)),
		}
		switch dom {
		case domain.DomainSocial:
			s.Rankings = rankPosts(snap.Posts)
			s.Breakdown = breakdownPosts(snap.Posts)
		case domain.DomainPaidMedia:
			s.Rankings = rankAds(snap.Ads)
			s.Breakdown = breakdownAds(snap.Ads)
		case domain.DomainOrganicSearch:
			s.Rankings = rankKeywords(snap.Keywords)
			s.Breakdown = breakdownKeywords(snap.Keywords)
		}
		sections[dom] = s
	}

	sections[domain.SectionSummary] = domain.Section{
		Domain:      domain.SectionSummary,
		Metrics:     maps.Clone(bigNumbers),
		Comparisons: cmp.Deltas,
	}
	return sections
}

func metricKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func engagementEvents(p store.SocialPost) int64 {
	return p.Likes + p.Comments + p.Saves + p.Shares
}

// rankPosts orders posts by total engagement events, descending. The sort is
// stable: ties keep their original record order.
func rankPosts(posts []store.SocialPost) []domain.RankedItem {
	ranked := make([]store.SocialPost, len(posts))
	copy(ranked, posts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return engagementEvents(ranked[i]) > engagementEvents(ranked[j])
	})
	items := make([]domain.RankedItem, 0, topPostsLimit)
	for i, p := range ranked {
		if i >= topPostsLimit {
			break
		}
		items = append(items, domain.RankedItem{
			Rank:  i + 1,
			Label: p.ID,
			Value: float64(engagementEvents(p)),
		})
	}
	return items
}

func rankAds(ads []store.AdRecord) []domain.RankedItem {
	ranked := make([]store.AdRecord, len(ads))
	copy(ranked, ads)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Spend > ranked[j].Spend
	})
	items := make([]domain.RankedItem, 0, topAdsLimit)
	for i, ad := range ranked {
		if i >= topAdsLimit {
			break
		}
		items = append(items, domain.RankedItem{
			Rank:  i + 1,
			Label: ad.AdName,
			Value: ad.Spend,
		})
	}
	return items
}

func rankKeywords(samples []store.KeywordRank) []domain.RankedItem {
	latest := latestPerKeyword(samples)
	sort.SliceStable(latest, func(i, j int) bool {
		return latest[i].EstimatedTraffic > latest[j].EstimatedTraffic
	})
	items := make([]domain.RankedItem, 0, topKeywordsLimit)
	for i, kw := range latest {
		if i >= topKeywordsLimit {
			break
		}
		items = append(items, domain.RankedItem{
			Rank:  i + 1,
			Label: kw.Keyword,
			Value: kw.EstimatedTraffic,
		})
	}
	return items
}

func breakdownPosts(posts []store.SocialPost) []domain.BreakdownGroup {
	type sums struct {
		count                                 int
		likes, comments, saves, shares, views int64
	}
	byType := make(map[string]*sums)
	var order []string
	for _, p := range posts {
		s, ok := byType[p.PostType]
		if !ok {
			s = &sums{}
			byType[p.PostType] = s
			order = append(order, p.PostType)
		}
		s.count++
		s.likes += p.Likes
		s.comments += p.Comments
		s.saves += p.Saves
		s.shares += p.Shares
		s.views += p.Views
	}
	groups := make([]domain.BreakdownGroup, 0, len(order))
	for _, t := range order {
		s := byType[t]
		n := float64(s.count)
		groups = append(groups, domain.BreakdownGroup{
			Category: t,
			Count:    s.count,
			Averages: map[string]float64{
				"likes":    float64(s.likes) / n,
				"comments": float64(s.comments) / n,
				"saves":    float64(s.saves) / n,
				"shares":   float64(s.shares) / n,
				"views":    float64(s.views) / n,
			},
		})
	}
	return groups
}

func breakdownAds(ads []store.AdRecord) []domain.BreakdownGroup {
	type sums struct {
		count               int
		spend               float64
		impressions, clicks int64
	}
	byPlatform := make(map[string]*sums)
	var order []string
	for _, ad := range ads {
		s, ok := byPlatform[ad.Platform]
		if !ok {
			s = &sums{}
			byPlatform[ad.Platform] = s
			order = append(order, ad.Platform)
		}
		s.count++
		s.spend += ad.Spend
		s.impressions += ad.Impressions
		s.clicks += ad.Clicks
	}
	groups := make([]domain.BreakdownGroup, 0, len(order))
	for _, p := range order {
		s := byPlatform[p]
		n := float64(s.count)
		groups = append(groups, domain.BreakdownGroup{
			Category: p,
			Count:    s.count,
			Averages: map[string]float64{
				"spend":       s.spend / n,
				"impressions": float64(s.impressions) / n,
				"clicks":      float64(s.clicks) / n,
			},
		})
	}
	return groups
}

// breakdownKeywords buckets keywords into ranking bands by latest position.
func breakdownKeywords(samples []store.KeywordRank) []domain.BreakdownGroup {
	latest := latestPerKeyword(samples)
	bands := []struct {
		name string
		from float64
		to   float64
	}{
		{"top_3", 0, 3},
		{"top_10", 3, 10},
		{"beyond_10", 10, 1 << 30},
	}
	groups := make([]domain.BreakdownGroup, 0, len(bands))
	for _, band := range bands {
		var count int
		var positionSum, traffic float64
		for _, kw := range latest {
			if kw.Position > band.from && kw.Position <= band.to {
				count++
				positionSum += kw.Position
				traffic += kw.EstimatedTraffic
			}
		}
		g := domain.BreakdownGroup{
			Category: band.name,
			Count:    count,
			Averages: map[string]float64{},
		}
		if count > 0 {
			g.Averages["position"] = positionSum / float64(count)
			g.Averages["traffic"] = traffic / float64(count)
		}
		groups = append(groups, g)
	}
	return groups
}

func latestPerKeyword(samples []store.KeywordRank) []store.KeywordRank {
	latest := make(map[string]store.KeywordRank)
	var order []string
	for _, s := range samples {
		cur, ok := latest[s.Keyword]
		if !ok {
			order = append(order, s.Keyword)
		}
		if !ok || s.OccurredAt.After(cur.OccurredAt) {
			latest[s.Keyword] = s
		}
	}
	out := make([]store.KeywordRank, 0, len(order))
	for _, k := range order {
		out = append(out, latest[k])
	}
	return out
}
