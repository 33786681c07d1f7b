package narrative

import (
	"fmt"
	"strings"
	"time"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/services/metrics"
)

// Digest renders the compact weekly check-in text. The output is fully
// deterministic: fixed labels, fixed block order (social, then paid media,
// then organic search). A domain without a snapshot produces no block at
// all, not an empty one.
func Digest(
	period domain.Period,
	snapshots map[domain.Domain]metrics.Snapshot,
	cmp domain.Comparison,
) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Check-in %s to %s\n",
		period.Start.Format(time.DateOnly), period.End.Format(time.DateOnly))

	if snap, ok := snapshots[domain.DomainSocial]; ok {
		m := snap.Aggregate.Metrics
		b.WriteString("\nSocial\n")
		writeLine(&b, "Posts published", m[metrics.MetricSocialPosts], "%.0f")
		writeLine(&b, "Likes", m[metrics.MetricSocialLikes], "%.0f")
		writeLine(&b, "Comments", m[metrics.MetricSocialComments], "%.0f")
		writeLine(&b, "Saves", m[metrics.MetricSocialSaves], "%.0f")
		writeLine(&b, "Shares", m[metrics.MetricSocialShares], "%.0f")
		writeLine(&b, "Views", m[metrics.MetricSocialViews], "%.0f")
		writeLine(&b, "Followers", m[metrics.MetricSocialFollowers], "%.0f")
		writeLine(&b, "Followers growth", m[metrics.MetricSocialFollowersGrowth], "%+.0f")
		writeLine(&b, "Engagement rate", m[metrics.MetricEngagementRate], "%.2f%%")
		writeGrowth(&b, "Engagement rate change", cmp, metrics.MetricEngagementRate)
	}

	if snap, ok := snapshots[domain.DomainPaidMedia]; ok {
		m := snap.Aggregate.Metrics
		b.WriteString("\nPaid media\n")
		writeLine(&b, "Spend", m[metrics.MetricAdsSpendTotal], "%.2f")
		writeLine(&b, "Impressions", m[metrics.MetricAdsImpressions], "%.0f")
		writeLine(&b, "Clicks", m[metrics.MetricAdsClicks], "%.0f")
		writeLine(&b, "Leads", m[metrics.MetricAdsLeads], "%.0f")
		writeLine(&b, "CTR", m[metrics.MetricAdsCTR], "%.2f%%")
		writeLine(&b, "CPC", m[metrics.MetricAdsCPC], "%.2f")
		writeGrowth(&b, "Spend change", cmp, metrics.MetricAdsSpendTotal)
	}

	if snap, ok := snapshots[domain.DomainOrganicSearch]; ok {
		m := snap.Aggregate.Metrics
		b.WriteString("\nOrganic search\n")
		writeLine(&b, "Tracked keywords", m[metrics.MetricSearchKeywords], "%.0f")
		writeLine(&b, "Average position", m[metrics.MetricSearchAvgPosition], "%.1f")
		writeLine(&b, "Keywords in top 3", m[metrics.MetricSearchTop3], "%.0f")
		writeLine(&b, "Keywords in top 10", m[metrics.MetricSearchTop10], "%.0f")
		writeLine(&b, "Estimated traffic", m[metrics.MetricSearchTraffic], "%.0f")
		writeGrowth(&b, "Traffic change", cmp, metrics.MetricSearchTraffic)
	}

	return b.String()
}

func writeLine(b *strings.Builder, label string, value float64, format string) {
	fmt.Fprintf(b, "- %s: "+format+"\n", label, value)
}

// writeGrowth emits a period-over-period line only when the percentage is
// defined; an undefined change is omitted, never shown as zero.
func writeGrowth(b *strings.Builder, label string, cmp domain.Comparison, key string) {
	d, ok := cmp.Deltas[key]
	if !ok || d.PctChange == nil {
		return
	}
	fmt.Fprintf(b, "- %s: %+.1f%%\n", label, *d.PctChange)
}
