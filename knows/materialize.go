// Package knows - the three edge-materialization passes.
package knows

import (
	"math/rand"

	"github.com/katalvlaran/knowsgen/cluster"
	"github.com/katalvlaran/knowsgen/community"
	"github.com/katalvlaran/knowsgen/people"
)

// materializeCommunity emits one community's core-core and
// core-periphery edges, in that order.
//
// Core-core: one Bernoulli trial per unordered core pair at the
// community's probability. The RNG is consumed for every pair, whether
// or not the trial succeeds, so the stream position is independent of
// creator outcomes.
//
// Core-periphery: the same deterministic budget walk the estimator
// used, now emitting real edges. Each core member scans the periphery
// from the front, taking one unit from each positive slot until its
// expected periphery degree is exhausted.
//
// After the walk, no periphery member's realized degree may exceed its
// prescribed target; a violation is a programmer error and is logged.
func (g *Generator) materializeCommunity(rng *rand.Rand, pop *people.Population, ci *cluster.Info, c *community.Community, stats *Stats) {
	for i := 0; i < len(c.Core); i++ {
		for j := i + 1; j < len(c.Core); j++ {
			if rng.Float64() > c.P {
				continue
			}
			if g.opts.Creator.Create(rng, pop, c.Core[i].Index, c.Core[j].Index) {
				stats.NumCoreCoreEdges++
			} else {
				stats.NumMisses++
			}
		}
	}

	budget := make([]int, len(c.Periphery))
	for k, pi := range c.Periphery {
		budget[k] = int(pi.Degree)
	}
	for _, pi := range c.Core {
		quota := int(ci.ExpectedPeripheryDegree[pi.Index])
		for k := 0; k < len(budget) && quota > 0; k++ {
			if budget[k] <= 0 {
				continue
			}
			budget[k]--
			quota--
			if g.opts.Creator.Create(rng, pop, pi.Index, c.Periphery[k].Index) {
				stats.NumCorePeripheryEdges++
			} else {
				stats.NumMisses++
			}
		}
	}

	for _, pi := range c.Periphery {
		if realized := pop.At(pi.Index).Degree(); uint64(realized) > pi.Degree {
			g.opts.Logger.Error("periphery degree exceeds target after budget walk",
				"community", c.ID, "person", pi.Index,
				"realized", realized, "target", pi.Degree)
		}
	}
}

// materializeResidual pairs off the remaining core degree deficit
// across all communities, configuration-model style.
//
// Every core member contributes one stub per unit of unmet target
// degree. The stub array and a parallel index list are shuffled
// independently; indices are then popped two at a time, and each pair
// of distinct persons becomes an edge proposal. Self-pairs and creator
// rejections count as misses. The pass ends when fewer than two stubs
// remain.
func (g *Generator) materializeResidual(rng *rand.Rand, pop *people.Population, comms []*community.Community, stats *Stats) {
	var stubs []int
	for _, c := range comms {
		for _, pi := range c.Core {
			deficit := int(pi.Degree) - pop.At(pi.Index).Degree()
			for d := 0; d < deficit; d++ {
				stubs = append(stubs, pi.Index)
			}
		}
	}

	order := make([]int, len(stubs))
	for i := range order {
		order[i] = i
	}
	shuffleInts(stubs, rng)
	shuffleInts(order, rng)

	for top := len(order); top >= 2; top -= 2 {
		a := stubs[order[top-1]]
		b := stubs[order[top-2]]
		if a == b {
			stats.NumMisses++

			continue
		}
		if g.opts.Creator.Create(rng, pop, a, b) {
			stats.NumCoreExternalEdges++
		} else {
			stats.NumMisses++
		}
	}
}
