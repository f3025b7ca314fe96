// Package community partitions a pre-sorted person array into an
// ordered list of contiguous communities, each split into a dense core
// and a sparser periphery.
//
// # Model
//
// A community is a contiguous window of the person array. Inside the
// window, persons are ranked by descending target degree (ties by
// ascending array index). Walking that ranking, a person joins the
// core while its degree is at least the current core size — the usual
// degree test for clique membership: a node of degree d can sit in a
// clique of size at most d+1. Everyone else forms the periphery.
//
// A window is feasible when the periphery can be absorbed by the
// core's excess budget: each core member retains
// degree − (|core| − 1) stubs after completing the core clique, and a
// greedy first-fit walk must be able to place every periphery member's
// full degree onto positive budget slots.
//
// # Algorithm
//
// Partition sweeps left to right, growing each window while feasible
// and probing up to Lookahead consecutive infeasible extensions before
// sealing the last known-feasible endpoint. A single-person window is
// always feasible, so the sweep always completes; infeasibility is a
// local, expected event and is never surfaced to the caller.
//
// Complexity: each probe sorts and budget-checks its window, so the
// sweep is O(Σ w·log w) over the probed windows; memory is O(w) for
// the largest window.
package community
