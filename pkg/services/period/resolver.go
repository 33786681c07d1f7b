package period

import (
	"time"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
)

// Resolve maps a cadence (plus optional explicit bounds) to a concrete
// period. End defaults to now; an explicit custom start overrides the
// cadence-derived start. Bounds are truncated to calendar dates (midnight
// UTC). An unknown cadence fails with a ConfigurationError, never a silent
// default.
func Resolve(cadence domain.Cadence, customStart, customEnd *time.Time, now time.Time) (domain.Period, error) {
	end := now
	if customEnd != nil {
		end = *customEnd
	}
	end = truncateToDate(end)

	var start time.Time
	switch cadence {
	case domain.CadenceWeeklyCheckin, domain.CadenceWeeklyReport:
		start = end.AddDate(0, 0, -7)
	case domain.CadenceMonthlyReport:
		start = firstOfMonth(end).AddDate(0, -1, 0)
	case domain.CadenceQuarterlyReport:
		start = firstOfMonth(end).AddDate(0, -3, 0)
	case domain.CadenceAnnualReport:
		start = firstOfMonth(end).AddDate(-1, 0, 0)
	default:
		return domain.Period{}, domain.NewConfigurationError("cadence", "unknown cadence %q", cadence)
	}

	if customStart != nil {
		start = truncateToDate(*customStart)
	}
	if !start.Before(end) {
		return domain.Period{}, domain.NewConfigurationError("period", "start %s is not before end %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	return domain.Period{Cadence: cadence, Start: start, End: end}, nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
