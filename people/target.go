// Package people - per-step degree targets.
package people

import "math"

// TargetEdges returns the prescribed number of knows edges this person
// should gain during the given generation step.
//
// The capacity MaxKnows is split across steps by cumulative rounding:
//
//	target(step) = round(cum(step)·MaxKnows) − round(cum(step−1)·MaxKnows)
//
// where cum(k) is the sum of percentages[0..k], capped at 1. Cumulative
// rounding guarantees the per-step targets sum to
// round(min(Σ percentages, 1) · MaxKnows) and never exceed MaxKnows,
// regardless of how the rounding of the individual shares falls.
//
// A step outside [0, len(percentages)) yields 0.
func (p *Person) TargetEdges(percentages []float64, step int) uint64 {
	if step < 0 || step >= len(percentages) {
		return 0
	}

	var before, through float64
	for k := 0; k <= step; k++ {
		through += percentages[k]
		if k < step {
			before += percentages[k]
		}
	}

	max := float64(p.MaxKnows)
	hi := math.Round(math.Min(through, 1.0) * max)
	lo := math.Round(math.Min(before, 1.0) * max)
	if hi <= lo {
		return 0
	}

	return uint64(hi - lo)
}
