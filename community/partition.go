// Package community - the greedy window sweep.
package community

// Partition splits the person ledger into an ordered list of disjoint
// communities covering the whole array. The input must be in array
// order (ascending Index); adjacency is dictated by position.
//
// The sweep grows a window [begin, last] to the right. Every candidate
// endpoint is probed with findSolution; a feasible probe advances the
// best known endpoint, an infeasible one is tolerated up to
// opts.Lookahead consecutive times before the best endpoint is sealed
// as a community and the sweep restarts just past it.
//
// Partition never fails: a single-person window is always feasible.
func Partition(infos []PersonInfo, opts Options) []*Community {
	lookahead := opts.Lookahead
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}

	var comms []*Community
	begin := 0
	for begin < len(infos) {
		// The one-person window is trivially feasible, so best never
		// stays unset.
		best := begin
		bestComm := findSolution(infos, begin, begin)

		fails := 0
		for last := begin + 1; last < len(infos) && fails < lookahead; last++ {
			if cand := findSolution(infos, begin, last); cand != nil {
				best, bestComm, fails = last, cand, 0
			} else {
				fails++
			}
		}

		bestComm.ID = len(comms)
		comms = append(comms, bestComm)
		begin = best + 1
	}

	return comms
}

// findSolution attempts to form a community from the window
// infos[begin..last] (inclusive). It returns nil when the periphery
// cannot be absorbed by the core's excess budget.
//
// Steps:
//  1. Copy and rank the window (descending Degree, ascending Index).
//  2. Classify in rank order: a person joins the core while its degree
//     is at least the current core size, otherwise the periphery.
//  3. Budget-check the periphery against the core's leftover stubs.
//
// Classification keeps the rank order inside both halves, so Core and
// Periphery come out already sorted per the comparator.
func findSolution(infos []PersonInfo, begin, last int) *Community {
	window := make([]PersonInfo, last-begin+1)
	copy(window, infos[begin:last+1])
	sortInfos(window)

	var core, periphery []PersonInfo
	for _, pi := range window {
		if pi.Degree >= uint64(len(core)) {
			core = append(core, pi)
		} else {
			periphery = append(periphery, pi)
		}
	}

	if !checkBudget(core, periphery) {
		return nil
	}

	return &Community{Core: core, Periphery: periphery}
}

// checkBudget reports whether the periphery's degree multiset can be
// absorbed by the core's excess-budget vector.
//
// budget[i] = core[i].Degree − (|core| − 1) is the number of stubs core
// member i retains after completing the core clique. Each periphery
// member of degree d greedily consumes one unit from each of the first
// d positive budget slots; if fewer than d positive slots remain, the
// window is infeasible.
//
// The classification in findSolution guarantees every budget entry is
// non-negative and every periphery degree is below |core|.
func checkBudget(core, periphery []PersonInfo) bool {
	budget := make([]int, len(core))
	for i, pi := range core {
		budget[i] = int(pi.Degree) - (len(core) - 1)
	}

	for _, pi := range periphery {
		need := int(pi.Degree)
		for k := 0; k < len(budget) && need > 0; k++ {
			if budget[k] > 0 {
				budget[k]--
				need--
			}
		}
		if need > 0 {
			return false
		}
	}

	return true
}

// Verify checks the core-viability invariant: every core member's
// degree must be at least |core| − 1. A violation is a programmer
// error in the partitioner; callers log it and continue.
func Verify(c *Community) error {
	for _, pi := range c.Core {
		if pi.Degree < uint64(len(c.Core)-1) {
			return ErrCoreViability
		}
	}

	return nil
}
