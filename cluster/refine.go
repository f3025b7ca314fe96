// Package cluster - stochastic refinement of per-community densities.
package cluster

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/knowsgen/community"
)

// Refine nudges per-community edge probabilities until the estimated
// mean clustering coefficient sits within opts.Tolerance of target,
// more than opts.MaxTries consecutive non-improving steps occur, or no
// community can move further in the needed direction.
//
// One step: pick a uniform-random community among those not pinned at
// the relevant bound, move its probability by 3/|core| (clamped to
// [opts.MinProb, 1]), re-estimate just that community, and adjust the
// advisory SumProbs aggregate by ±0.01. A step improves when it brings
// the estimate closer to the target than every earlier step of this
// call; an improving step resets the failure run, any other step
// (including an overshoot past the target) increments it.
//
// Returns the final estimated mean. ErrSaturated is reported when the
// needed direction had no adjustable community left; callers treat it
// as a soft condition and proceed with whatever densities stand.
//
// Every random draw comes from rng, one draw per step, keeping the
// generator's single-stream determinism contract.
func Refine(rng *rand.Rand, ci *Info, comms []*community.Community, target float64, opts RefineOptions) (float64, error) {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultRefineTolerance
	}
	maxTries := opts.MaxTries
	if maxTries <= 0 {
		maxTries = DefaultRefineMaxTries
	}

	current := ci.MeanCoefficient(true)
	bestGap := math.Abs(current - target)
	candidates := make([]*community.Community, 0, len(comms))

	tries := 0
	for math.Abs(current-target) > tol && tries <= maxTries {
		raise := current < target

		candidates = candidates[:0]
		for _, c := range comms {
			if raise && c.P < 1.0 {
				candidates = append(candidates, c)
			}
			if !raise && c.P > opts.MinProb {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			return current, ErrSaturated
		}

		c := candidates[rng.Intn(len(candidates))]
		step := 3.0 / float64(len(c.Core))
		if raise {
			c.P = math.Min(1.0, c.P+step)
			ci.SumProbs += 0.01
		} else {
			c.P = math.Max(opts.MinProb, c.P-step)
			ci.SumProbs -= 0.01
		}

		ci.EstimateCommunity(c, c.P)

		next := ci.MeanCoefficient(true)
		if gap := math.Abs(next - target); gap < bestGap {
			bestGap = gap
			tries = 0
		} else {
			tries++
		}
		current = next
	}

	return current, nil
}
