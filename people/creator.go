// Package people - edge admission models.
package people

import (
	"math"
	"math/rand"
)

// EdgeCreator decides whether a proposed knows edge may be created and,
// if so, inserts it into both endpoints. Implementations may consult
// the RNG; every draw they make is part of the generator's single
// deterministic stream, so a creator must draw in a fixed order.
//
// Create returns true when the edge was inserted, false when the pair
// was rejected (duplicate, overflow, or model rejection). Rejections
// are expected and are counted by the caller, never treated as errors.
type EdgeCreator interface {
	Create(rng *rand.Rand, pop *Population, a, b int) bool
}

// CapCreator admits every structurally legal edge: it rejects loops,
// duplicates, and capacity overflows, nothing else. It draws nothing
// from the RNG. This is the generator's default creator.
type CapCreator struct{}

// Create implements EdgeCreator.
func (CapCreator) Create(_ *rand.Rand, pop *Population, a, b int) bool {
	return pop.AddEdge(a, b) == nil
}

// CorrelationCreator models locality: the probability of accepting a
// pair decays with the distance between the two account identifiers.
// Structural rules still apply after the probabilistic gate.
//
//	accept = Baseline + (1 − Baseline) · exp(−|idA − idB| / Scale)
//
// A nearby pair (distance ≪ Scale) is almost always accepted; a far
// pair is accepted with probability about Baseline.
type CorrelationCreator struct {
	// Baseline is the acceptance floor for arbitrarily distant pairs.
	Baseline float64

	// Scale is the characteristic account-id distance of the decay.
	Scale float64
}

// Create implements EdgeCreator. Exactly one RNG draw per proposal.
func (c CorrelationCreator) Create(rng *rand.Rand, pop *Population, a, b int) bool {
	if pop.checkIndex(a) != nil || pop.checkIndex(b) != nil {
		return false
	}

	dist := accountDistance(pop.persons[a].AccountID, pop.persons[b].AccountID)
	accept := c.Baseline + (1.0-c.Baseline)*math.Exp(-dist/c.Scale)
	if rng.Float64() >= accept {
		return false
	}

	return pop.AddEdge(a, b) == nil
}

func accountDistance(x, y uint64) float64 {
	if x >= y {
		return float64(x - y)
	}

	return float64(y - x)
}
