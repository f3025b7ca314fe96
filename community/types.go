// Package community - core types, options, and sentinel errors.
package community

import (
	"errors"
	"sort"
)

// Sentinel errors for community verification.
var (
	// ErrCoreViability indicates a core member whose degree is below
	// |core| − 1. This is a programmer error in the partitioner, not a
	// runtime condition; callers should log it loudly.
	ErrCoreViability = errors.New("community: core member degree below core size - 1")
)

// DefaultLookahead is the number of consecutive infeasible window
// extensions tolerated before a community is sealed.
const DefaultLookahead = 5

// PersonInfo is the partitioner's lightweight ledger entry for one
// person. It lives for a single generator invocation.
type PersonInfo struct {
	// Index is the person's position in the person array.
	Index int

	// Degree is the target degree for this generation step.
	Degree uint64

	// OriginalDegree is the upper bound on this person's knows capacity.
	OriginalDegree uint64
}

// Community is a contiguous slice of the person array split into a
// dense core and a sparser periphery, parameterized by the intra-core
// edge probability P.
//
// Invariants:
//   - Core and Periphery are disjoint; their union is contiguous.
//   - Every core member's Degree is at least len(Core) − 1.
//   - Core and Periphery are each ordered by descending Degree,
//     ties broken by ascending Index.
type Community struct {
	// ID is assigned by insertion order during partitioning.
	ID int

	// Core holds the clique candidates, sorted per the comparator.
	Core []PersonInfo

	// Periphery holds the remaining members, sorted per the comparator.
	Periphery []PersonInfo

	// P is the intra-core edge probability, maintained by the caller
	// within [min probability, 1.0].
	P float64
}

// Size returns the total number of persons in the community.
func (c *Community) Size() int { return len(c.Core) + len(c.Periphery) }

// Options configures the partitioner. Zero value is usable via
// DefaultOptions.
type Options struct {
	// Lookahead bounds the consecutive infeasible probes before a
	// community is sealed. Default: DefaultLookahead.
	Lookahead int
}

// DefaultOptions returns the production partitioner settings.
func DefaultOptions() Options {
	return Options{Lookahead: DefaultLookahead}
}

// sortInfos orders infos by descending Degree, ties by ascending
// Index. The comparator is a total order, so sorting is idempotent.
func sortInfos(infos []PersonInfo) {
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Degree != infos[j].Degree {
			return infos[i].Degree > infos[j].Degree
		}

		return infos[i].Index < infos[j].Index
	})
}
