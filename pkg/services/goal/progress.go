package goal

import (
	"math"
	"time"
)

// Progress normalizes a goal's current value to an integer in [0,100].
// A target below the baseline means lower-is-better (e.g. cost per lead);
// values outside the baseline→target range never overshoot 100 or go
// negative.
func Progress(baseline, target, current float64) int {
	if target == baseline {
		// Degenerate goal with no range: either reached or not.
		if current >= target {
			return 100
		}
		return 0
	}

	var pct float64
	if target < baseline {
		pct = (baseline - current) / (baseline - target) * 100
	} else {
		pct = (current - baseline) / (target - baseline) * 100
	}
	return clampInt(int(math.Round(pct)), 0, 100)
}

// ElapsedPct returns how much of the goal's period has passed as a
// percentage, clamped to [0,100].
func ElapsedPct(start, end, now time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 100
	}
	pct := float64(now.Sub(start)) / float64(total) * 100
	return math.Max(0, math.Min(100, pct))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
