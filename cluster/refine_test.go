package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knowsgen/cluster"
	"github.com/katalvlaran/knowsgen/community"
)

// buildState mirrors the driver bootstrap over k copies of the worked
// example: expected degrees ledgered at p = 1, estimates settled at
// p = 0.5.
func buildState(k int) (*cluster.Info, []*community.Community) {
	comms := make([]*community.Community, k)
	for id := 0; id < k; id++ {
		c := fixtureCommunity()
		c.ID = id
		for i := range c.Core {
			c.Core[i].Index += 5 * id
		}
		for i := range c.Periphery {
			c.Periphery[i].Index += 5 * id
		}
		comms[id] = c
	}

	ci := cluster.NewInfo(5*k, k)
	for _, c := range comms {
		c.P = 1.0
		ci.ComputeCommunity(c, 1.0)
	}
	for _, c := range comms {
		c.P = 0.5
		ci.EstimateCommunity(c, 0.5)
	}

	return ci, comms
}

// TestRefine_SaturatesHigh: an unreachable target drives every
// community to full density and reports saturation.
func TestRefine_SaturatesHigh(t *testing.T) {
	ci, comms := buildState(4)
	before := ci.MeanCoefficient(true)

	rng := rand.New(rand.NewSource(11))
	got, err := cluster.Refine(rng, ci, comms, 0.95, cluster.DefaultRefineOptions(0.1))

	assert.ErrorIs(t, err, cluster.ErrSaturated)
	assert.Greater(t, got, before, "raising densities must raise the estimate")
	for _, c := range comms {
		assert.InDelta(t, 1.0, c.P, 1e-12, "community %d pinned at full density", c.ID)
	}
}

// TestRefine_SaturatesLow: a zero target drives every community to the
// probability floor.
func TestRefine_SaturatesLow(t *testing.T) {
	ci, comms := buildState(4)
	before := ci.MeanCoefficient(true)

	rng := rand.New(rand.NewSource(11))
	got, err := cluster.Refine(rng, ci, comms, 0.0, cluster.DefaultRefineOptions(0.1))

	assert.ErrorIs(t, err, cluster.ErrSaturated)
	assert.Less(t, got, before, "lowering densities must lower the estimate")
	for _, c := range comms {
		assert.InDelta(t, 0.1, c.P, 1e-12, "community %d pinned at the floor", c.ID)
	}
}

// TestRefine_AlreadyOnTarget: a target within tolerance returns
// without touching anything or consuming randomness.
func TestRefine_AlreadyOnTarget(t *testing.T) {
	ci, comms := buildState(3)
	target := ci.MeanCoefficient(true)

	rng := rand.New(rand.NewSource(5))
	before := rng.Int63()
	rng = rand.New(rand.NewSource(5))

	got, err := cluster.Refine(rng, ci, comms, target, cluster.DefaultRefineOptions(0.1))
	require.NoError(t, err)
	assert.InDelta(t, target, got, 1e-12)
	assert.Equal(t, before, rng.Int63(), "no draw was consumed")
	for _, c := range comms {
		assert.InDelta(t, 0.5, c.P, 1e-12, "densities untouched")
	}
}

// TestRefine_Deterministic: equal seeds produce equal density vectors.
func TestRefine_Deterministic(t *testing.T) {
	run := func() []float64 {
		ci, comms := buildState(6)
		rng := rand.New(rand.NewSource(99))
		_, _ = cluster.Refine(rng, ci, comms, 0.4, cluster.DefaultRefineOptions(0.1))
		ps := make([]float64, len(comms))
		for i, c := range comms {
			ps[i] = c.P
		}

		return ps
	}

	assert.Equal(t, run(), run())
}
