package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/knowsgen/cluster"
	"github.com/katalvlaran/knowsgen/community"
)

// TestEstimateCommunity_SingleCommunity checks the worked example at
// p = 1 with no foreign communities: stub statistics vanish, so only
// internal and periphery triangles contribute.
//
//	periphery (d=2, orig=2):   cc = 2·1·1 / (2·1)        = 1
//	core 0, 1 (2 slots each):  cc = (2 + 4) / (4·3)      = 0.5
//	core 2 (external only):    cc = 2 / (4·3)            = 1/6
func TestEstimateCommunity_SingleCommunity(t *testing.T) {
	c := fixtureCommunity()
	ci := cluster.NewInfo(5, 1)
	ci.ComputeCommunity(c, 1.0)
	ci.EstimateCommunity(c, 1.0)

	assert.InDelta(t, 0.5, ci.Coefficient[0], 1e-9)
	assert.InDelta(t, 0.5, ci.Coefficient[1], 1e-9)
	assert.InDelta(t, 1.0/6.0, ci.Coefficient[2], 1e-9)
	assert.InDelta(t, 1.0, ci.Coefficient[3], 1e-9)
	assert.InDelta(t, 1.0, ci.Coefficient[4], 1e-9)

	mean := (0.5 + 0.5 + 1.0/6.0 + 1.0 + 1.0) / 5.0
	assert.InDelta(t, mean, ci.MeanCoefficient(true), 1e-9)
	assert.InDelta(t, mean, ci.MeanCoefficient(false), 1e-9, "no zero-degree persons, both modes agree")
}

// TestEstimateCommunity_ExternalTriangles verifies the cross-community
// term: with one foreign community holding all external stubs, two of
// this core's stubs land together with probability 1 and close with
// the foreign density.
func TestEstimateCommunity_ExternalTriangles(t *testing.T) {
	c0 := fixtureCommunity()
	c1 := fixtureCommunity()
	c1.ID = 1
	for i := range c1.Core {
		c1.Core[i].Index += 5
	}
	for i := range c1.Periphery {
		c1.Periphery[i].Index += 5
	}

	ci := cluster.NewInfo(10, 2)
	ci.ComputeCommunity(c0, 1.0)
	ci.ComputeCommunity(c1, 1.0)
	ci.EstimateCommunity(c0, 1.0)

	// Core member 2 carries e = 2 external stubs. The only foreign
	// community has S = 2, so probSame = probTriangleSame = 1 and the
	// external term is e·(e−1)·1 = 2, lifting cc from 1/6 to 1/3.
	assert.InDelta(t, 1.0/3.0, ci.Coefficient[2], 1e-9)

	// Members with no external stubs are unaffected.
	assert.InDelta(t, 0.5, ci.Coefficient[0], 1e-9)
}

// TestMeanCoefficient_Modes checks the two divisor conventions on a
// hand-filled ledger.
func TestMeanCoefficient_Modes(t *testing.T) {
	ci := cluster.NewInfo(3, 1)
	copy(ci.Coefficient, []float64{0.6, 0.3, 0})
	copy(ci.TargetDegree, []float64{2, 1, 0})

	assert.InDelta(t, 0.3, ci.MeanCoefficient(true), 1e-12, "divide by everyone")
	assert.InDelta(t, 0.45, ci.MeanCoefficient(false), 1e-12, "divide by persons with degree > 0")
}

// TestMeanCoefficient_Empty guards the zero-population case.
func TestMeanCoefficient_Empty(t *testing.T) {
	ci := cluster.NewInfo(0, 0)
	assert.Zero(t, ci.MeanCoefficient(true))
	assert.Zero(t, ci.MeanCoefficient(false))
}

// TestEstimateCommunity_LowDegreeMembers: persons of degree ≤ 1 score
// zero in both halves, and the shared walk still advances past them.
func TestEstimateCommunity_LowDegreeMembers(t *testing.T) {
	c := &community.Community{
		ID: 0,
		Core: []community.PersonInfo{
			{Index: 0, Degree: 2, OriginalDegree: 3},
			{Index: 1, Degree: 1, OriginalDegree: 3},
		},
		Periphery: []community.PersonInfo{
			{Index: 2, Degree: 1, OriginalDegree: 2},
		},
	}
	ci := cluster.NewInfo(3, 1)
	ci.ComputeCommunity(c, 1.0)
	ci.EstimateCommunity(c, 1.0)

	assert.Zero(t, ci.Coefficient[1], "degree-1 core member")
	assert.Zero(t, ci.Coefficient[2], "degree-1 periphery member")
}
