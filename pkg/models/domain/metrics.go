package domain

// Domain is an independent metric area.
type Domain string

const (
	DomainSocial        Domain = "social"
	DomainPaidMedia     Domain = "paid_media"
	DomainOrganicSearch Domain = "organic_search"

	// SectionSummary keys the merged cross-domain summary section of a
	// report. It is not an aggregation domain and is never contracted.
	SectionSummary Domain = "summary"
)

// Aggregate is a flat numeric snapshot for one (entity, domain, period).
// HasData distinguishes "no records in period" from a real zero; an absent
// domain still yields an all-zero metric map with HasData=false.
type Aggregate struct {
	Domain  Domain
	HasData bool
	Metrics map[string]float64
}

// Trend is the direction of a period-over-period change.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// Delta is one metric's period-over-period comparison. PctChange is nil when
// the previous value is zero or missing: an undefined percentage is reported
// as such, never coerced to 0 or an infinity.
type Delta struct {
	Current   float64
	Previous  float64
	Change    float64
	PctChange *float64
	Trend     Trend
}

// Comparison is the full diff between a current snapshot and the previously
// persisted one. HasPrevious is false when no prior report of the same
// cadence exists; in that case every PctChange is nil.
type Comparison struct {
	HasPrevious bool
	Deltas      map[string]Delta
}
