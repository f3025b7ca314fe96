// Package people - core types and sentinel errors for the person model.
package people

import "errors"

// Sentinel errors for population operations.
var (
	// ErrIndexOutOfRange indicates a person index outside [0, Len).
	ErrIndexOutOfRange = errors.New("people: person index out of range")

	// ErrSelfEdge indicates an attempted edge from a person to itself.
	ErrSelfEdge = errors.New("people: self edge not allowed")

	// ErrDuplicateEdge indicates the pair already knows each other.
	ErrDuplicateEdge = errors.New("people: duplicate edge")

	// ErrCapacityExceeded indicates an endpoint's knows-set is full.
	ErrCapacityExceeded = errors.New("people: knows capacity exceeded")
)

// Person is one member of the population.
//
// AccountID is a stable external identifier; MaxKnows caps the size of
// the knows-set. The knows-set itself is private: it is a sorted slice
// of neighbor indices maintained by the owning Population.
type Person struct {
	// AccountID is the external identity of this person.
	AccountID uint64

	// MaxKnows is the capacity cap on this person's knows-set.
	MaxKnows uint64

	// knows holds neighbor indices in ascending order, no duplicates.
	knows []int
}

// NewPerson constructs a Person with the given identity and capacity.
func NewPerson(accountID, maxKnows uint64) *Person {
	return &Person{AccountID: accountID, MaxKnows: maxKnows}
}

// Degree returns the current size of the knows-set.
func (p *Person) Degree() int { return len(p.knows) }

// Knows returns a copy of the sorted neighbor indices.
// The copy keeps callers from breaking the sorted-unique invariant.
func (p *Person) Knows() []int {
	out := make([]int, len(p.knows))
	copy(out, p.knows)

	return out
}

// Population is an ordered, indexable collection of persons.
// Adjacency between persons is dictated by array position: the
// generator assumes the array is pre-sorted by an external pipeline.
type Population struct {
	persons []*Person
}

// NewPopulation wraps the given persons. The slice is used as-is; the
// caller must not reorder it after construction.
func NewPopulation(persons []*Person) *Population {
	return &Population{persons: persons}
}

// Len returns the number of persons.
func (pop *Population) Len() int { return len(pop.persons) }

// At returns the person at index i. Panics on out-of-range access,
// mirroring slice semantics; validated entry points use checkIndex.
func (pop *Population) At(i int) *Person { return pop.persons[i] }

func (pop *Population) checkIndex(i int) error {
	if i < 0 || i >= len(pop.persons) {
		return ErrIndexOutOfRange
	}

	return nil
}
