// Package people - knows-set mutation and queries.
//
// Determinism:
//   - Every knows-set stays sorted ascending with no duplicates, so two
//     runs that perform the same insertions in the same order produce
//     byte-identical snapshots.
package people

import "sort"

// hasKnows reports whether j is already in p's knows-set.
// Complexity: O(log d) binary search.
func (p *Person) hasKnows(j int) bool {
	k := sort.SearchInts(p.knows, j)

	return k < len(p.knows) && p.knows[k] == j
}

// insertKnows adds j to p's knows-set, keeping ascending order.
// The caller guarantees j is not yet present.
// Complexity: O(d) for the shift.
func (p *Person) insertKnows(j int) {
	k := sort.SearchInts(p.knows, j)
	p.knows = append(p.knows, 0)
	copy(p.knows[k+1:], p.knows[k:])
	p.knows[k] = j
}

// HasEdge reports whether persons a and b know each other.
// The relation is symmetric; only a's set is consulted.
func (pop *Population) HasEdge(a, b int) bool {
	if pop.checkIndex(a) != nil || pop.checkIndex(b) != nil {
		return false
	}

	return pop.persons[a].hasKnows(b)
}

// AddEdge inserts the undirected edge (a, b) into both endpoints'
// knows-sets, or neither.
//
// Errors:
//   - ErrIndexOutOfRange for an invalid index.
//   - ErrSelfEdge for a == b.
//   - ErrDuplicateEdge when the pair already knows each other.
//   - ErrCapacityExceeded when either endpoint is at MaxKnows.
//
// Complexity: O(d) per endpoint.
func (pop *Population) AddEdge(a, b int) error {
	if err := pop.checkIndex(a); err != nil {
		return err
	}
	if err := pop.checkIndex(b); err != nil {
		return err
	}
	if a == b {
		return ErrSelfEdge
	}

	pa, pb := pop.persons[a], pop.persons[b]
	if pa.hasKnows(b) {
		return ErrDuplicateEdge
	}
	if uint64(len(pa.knows)) >= pa.MaxKnows || uint64(len(pb.knows)) >= pb.MaxKnows {
		return ErrCapacityExceeded
	}

	pa.insertKnows(b)
	pb.insertKnows(a)

	return nil
}

// ClearKnows empties every person's knows-set, reusing the backing
// arrays. The driver calls this between convergence iterations.
func (pop *Population) ClearKnows() {
	for _, p := range pop.persons {
		p.knows = p.knows[:0]
	}
}

// EdgeCount returns the number of undirected edges in the population.
func (pop *Population) EdgeCount() int {
	var total int
	for _, p := range pop.persons {
		total += len(p.knows)
	}

	return total / 2
}
