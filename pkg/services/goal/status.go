package goal

import "github.com/mk-tools/brand-atlas/pkg/models/domain"

// Banding thresholds. Kept as named constants so a product-driven change is
// a one-line edit, not a hunt for literals.
const (
	// OnTrackSlack is how many points progress may trail elapsed time and
	// still count as on track.
	OnTrackSlack = 10
	// AtRiskSlack is the trailing allowance before a goal is behind.
	AtRiskSlack = 25

	// GreenEngagementRate is the exclusive lower bound for a green report.
	GreenEngagementRate = 2.0
	// YellowEngagementRate is the exclusive lower bound for yellow.
	YellowEngagementRate = 1.0
)

// Status classifies goal progress against elapsed time. Exactly-equal
// boundaries resolve to the better band.
func Status(progress int, elapsedPct float64) domain.GoalStatus {
	switch {
	case progress >= 100:
		return domain.StatusAchieved
	case float64(progress) >= elapsedPct-OnTrackSlack:
		return domain.StatusOnTrack
	case float64(progress) >= elapsedPct-AtRiskSlack:
		return domain.StatusAtRisk
	default:
		return domain.StatusBehind
	}
}

// Health maps an engagement rate to a traffic-light color. A period with no
// collected data is a warning (yellow), not a failure, regardless of the
// zero rate it produces.
func Health(engagementRate float64, hasAnyData bool) domain.HealthColor {
	switch {
	case engagementRate > GreenEngagementRate:
		return domain.HealthGreen
	case engagementRate > YellowEngagementRate:
		return domain.HealthYellow
	case !hasAnyData:
		return domain.HealthYellow
	default:
		return domain.HealthRed
	}
}
