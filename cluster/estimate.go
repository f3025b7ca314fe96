// Package cluster - the analytic clustering-coefficient estimate.
package cluster

import "github.com/katalvlaran/knowsgen/community"

// EstimateCommunity recomputes the analytic clustering-coefficient
// estimate for every member of c, assuming intra-core edge probability
// p and random wiring of all external stubs across communities.
//
// The ledger's expected degrees are read as-is; only the coefficients
// and CoreProbs[c.ID] are written, which lets the refiner re-estimate
// a single community cheaply after nudging its probability.
//
// Periphery member with degree d > 1:
//
//	cc = d·(d−1)·p / (orig·(orig−1))
//
// Core member with degree > 1 accumulates three triangle sources —
// inside the core, through its periphery slots, and through external
// stubs landing in the same foreign community — normalized by
// orig·(orig−1).
//
// Complexity: O(numCommunities + |core|·|periphery|).
func (ci *Info) EstimateCommunity(c *community.Community, p float64) {
	ci.CoreProbs[c.ID] = p

	// Stub statistics over all other communities: the chance that two
	// of this community's external stubs land in the same foreign core,
	// and that the landing core closes the triangle.
	var sumS, sumS2, sumS2P float64
	for j := 0; j < ci.NumCommunities; j++ {
		if j == c.ID {
			continue
		}
		s := ci.CoreStubs[j]
		sumS += s
		sumS2 += s * s
		sumS2P += s * s * ci.CoreProbs[j]
	}

	var probSame, probTriangleSame float64
	if sumS > 0 {
		probSame = sumS2 / (sumS * sumS)
		probTriangleSame = sumS2P / (sumS * sumS)
	}

	// TODO: the pair filter for this term compared a person's community
	// id against itself and never passed, so the two-connected
	// contribution is identically zero; decide whether it should
	// compare the two endpoints' communities and re-derive the pair sum
	// before wiring it back in.
	probTwoConnected := 0.0

	for _, pi := range c.Periphery {
		i := pi.Index
		ci.Coefficient[i] = 0
		d := float64(pi.Degree)
		orig := float64(pi.OriginalDegree)
		if pi.Degree > 1 && pi.OriginalDegree > 1 {
			ci.Coefficient[i] = d * (d - 1) * p / (orig * (orig - 1))
		}
	}

	budget := peripheryBudget(c)
	for _, pi := range c.Core {
		i := pi.Index
		ci.Coefficient[i] = 0
		if pi.Degree <= 1 {
			// Still advance the shared walk so later members see the
			// same slots as the bookkeeping pass.
			consumeSlots(budget, ci.ExpectedPeripheryDegree[i], nil)
			continue
		}

		var internal float64
		if inner := ci.ExpectedCoreDegree[i]; inner >= 2 {
			internal = inner * (inner - 1) * p
		}

		var periphery float64
		consumeSlots(budget, ci.ExpectedPeripheryDegree[i], func(k int) {
			if c.Periphery[k].Degree > 1 {
				periphery += 2 * float64(c.Periphery[k].Degree-1) * p
			}
		})

		var external float64
		if e := ci.ExpectedExternalDegree[i]; e >= 2 {
			external = e*(e-1)*probTriangleSame +
				e*(e-1)*(1-probSame)*probTwoConnected
		}

		if orig := float64(pi.OriginalDegree); orig >= 2 {
			ci.Coefficient[i] = (internal + periphery + external) / (orig * (orig - 1))
		}
	}
}

// MeanCoefficient averages the per-person estimates. With countZeros
// the divisor is the whole population; without it, only persons with a
// positive target degree count. The refiner uses the countZeros form.
func (ci *Info) MeanCoefficient(countZeros bool) float64 {
	if len(ci.Coefficient) == 0 {
		return 0
	}

	var sum float64
	var active int
	for i, cc := range ci.Coefficient {
		sum += cc
		if ci.TargetDegree[i] > 0 {
			active++
		}
	}

	if countZeros {
		return sum / float64(len(ci.Coefficient))
	}
	if active == 0 {
		return 0
	}

	return sum / float64(active)
}
