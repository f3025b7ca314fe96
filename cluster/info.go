// Package cluster - expected-degree bookkeeping per community.
package cluster

import "github.com/katalvlaran/knowsgen/community"

// ComputeCommunity fills the ledger rows of every member of c under
// edge probability p and refreshes the community aggregates.
//
// Expected degrees for a core member i:
//
//	expectedCore(i)   = (|core| − 1) · p
//	excedence(i)      = degree(i) − expectedCore(i)
//	expectedPeriph(i) = slots consumed by the packing walk below
//	expectedExt(i)    = degree(i) − expectedCore(i) − expectedPeriph(i)
//
// The packing walk is order-sensitive and reproducible: one budget
// vector budget[k] = periphery[k].Degree is shared by the whole core;
// each core member, in core order, scans the periphery from the front
// and consumes one unit from each still-positive slot while its
// remaining excedence is at least one whole unit. Consuming whole
// units only keeps expectedExt non-negative.
//
// Complexity: O(|core| · |periphery|) worst case, O(size) memory.
func (ci *Info) ComputeCommunity(c *community.Community, p float64) {
	coreEdges := float64(len(c.Core)-1) * p

	for _, pi := range c.Core {
		i := pi.Index
		ci.IsCore[i] = true
		ci.CommunityID[i] = c.ID
		ci.TargetDegree[i] = float64(pi.Degree)
		ci.ExpectedCoreDegree[i] = coreEdges
		ci.ExcedenceDegree[i] = ci.TargetDegree[i] - coreEdges
		ci.ExpectedPeripheryDegree[i] = 0
		ci.ExpectedExternalDegree[i] = 0
	}
	for _, pi := range c.Periphery {
		i := pi.Index
		ci.IsCore[i] = false
		ci.CommunityID[i] = c.ID
		ci.TargetDegree[i] = float64(pi.Degree)
		ci.ExpectedCoreDegree[i] = 0
		ci.ExcedenceDegree[i] = 0
		ci.ExpectedPeripheryDegree[i] = 0
		ci.ExpectedExternalDegree[i] = 0
	}

	budget := peripheryBudget(c)
	var stubs float64
	for _, pi := range c.Core {
		i := pi.Index
		consumed := consumeSlots(budget, ci.ExcedenceDegree[i], nil)
		ci.ExpectedPeripheryDegree[i] = float64(consumed)
		ci.ExpectedExternalDegree[i] = ci.TargetDegree[i] - ci.ExpectedCoreDegree[i] - ci.ExpectedPeripheryDegree[i]
		stubs += ci.ExpectedExternalDegree[i]
	}

	ci.CoreStubs[c.ID] = stubs
	ci.CoreProbs[c.ID] = p
}

// peripheryBudget builds the shared budget vector for one packing
// walk: one slot per periphery member, charged with its target degree.
func peripheryBudget(c *community.Community) []int {
	budget := make([]int, len(c.Periphery))
	for k, pi := range c.Periphery {
		budget[k] = int(pi.Degree)
	}

	return budget
}

// consumeSlots runs one core member's leg of the packing walk: scan
// the budget from the front, take one unit from each positive slot
// while at least one whole unit of quota remains, and report how many
// slots were taken. When visit is non-nil it is called with each
// consumed slot index, in order.
func consumeSlots(budget []int, quota float64, visit func(k int)) int {
	var consumed int
	for k := 0; k < len(budget) && quota >= 1; k++ {
		if budget[k] <= 0 {
			continue
		}
		budget[k]--
		quota--
		consumed++
		if visit != nil {
			visit(k)
		}
	}

	return consumed
}
