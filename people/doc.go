// Package people models the person population the knows generator
// operates on: opaque persons with a capacity cap, per-step degree
// targets, and a mutable, index-based "knows" adjacency set.
//
// Design notes:
//
//   - Persons never hold pointers to each other. The knows relation is a
//     per-person sorted slice of neighbor indices into the owning
//     Population, so snapshots, comparisons, and golden tests stay
//     deterministic and cycle-free.
//   - Edge insertion is symmetric and goes through Population.AddEdge,
//     which updates both endpoints or neither.
//   - Whether a proposed edge is admissible at all is the business of an
//     EdgeCreator. CapCreator enforces only the structural rules
//     (no loops, no duplicates, capacity caps); CorrelationCreator
//     additionally rejects distant pairs probabilistically, consuming
//     the caller's RNG stream.
//
// The package performs no locking: a Population is mutated by exactly
// one generator invocation at a time.
package people
