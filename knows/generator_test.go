package knows_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knowsgen/config"
	"github.com/katalvlaran/knowsgen/knows"
	"github.com/katalvlaran/knowsgen/people"
)

func quietOptions() knows.Options {
	opts := knows.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	return opts
}

// testPopulation builds a deterministic population with capacities
// descending in blocks, the shape the generator expects from the
// upstream sort.
func testPopulation(n int) *people.Population {
	persons := make([]*people.Person, n)
	for i := range persons {
		capacity := uint64(3 + (n-i)/6)
		persons[i] = people.NewPerson(uint64(i)+1, capacity)
	}

	return people.NewPopulation(persons)
}

func snapshot(pop *people.Population) [][]int {
	out := make([][]int, pop.Len())
	for i := range out {
		out[i] = pop.At(i).Knows()
	}

	return out
}

// TestGenerate_Deterministic: identical inputs yield identical
// knows-sets and identical statistics, including across a clear and
// regenerate cycle.
func TestGenerate_Deterministic(t *testing.T) {
	pcts := []float64{1.0}

	popA := testPopulation(60)
	statsA := knows.New(config.Default(), quietOptions()).Generate(popA, 42, pcts, 0)
	snapA := snapshot(popA)

	popB := testPopulation(60)
	gen := knows.New(config.Default(), quietOptions())
	statsB := gen.Generate(popB, 42, pcts, 0)

	assert.Equal(t, snapA, snapshot(popB), "knows-sets must match")
	assert.Equal(t, statsA, statsB, "statistics must match")

	// Clearing and regenerating with the same inputs reproduces the
	// same snapshot.
	popB.ClearKnows()
	gen.Generate(popB, 42, pcts, 0)
	assert.Equal(t, snapA, snapshot(popB), "regeneration must be idempotent")
}

// TestGenerate_SeedSensitivity: a different seed reroutes the random
// draws and produces a different graph.
func TestGenerate_SeedSensitivity(t *testing.T) {
	pcts := []float64{1.0}

	popA := testPopulation(60)
	knows.New(config.Default(), quietOptions()).Generate(popA, 1, pcts, 0)
	popB := testPopulation(60)
	knows.New(config.Default(), quietOptions()).Generate(popB, 2, pcts, 0)

	assert.NotEqual(t, snapshot(popA), snapshot(popB))
}

// TestGenerate_RespectsCapacity: no realized degree may exceed the
// person's capacity cap, and the edge counters must account for every
// edge standing at completion.
func TestGenerate_RespectsCapacity(t *testing.T) {
	pop := testPopulation(80)
	stats := knows.New(config.Default(), quietOptions()).Generate(pop, 7, []float64{1.0}, 0)

	for i := 0; i < pop.Len(); i++ {
		p := pop.At(i)
		assert.LessOrEqual(t, uint64(p.Degree()), p.MaxKnows, "person %d", i)
	}

	created := stats.NumCoreCoreEdges + stats.NumCorePeripheryEdges + stats.NumCoreExternalEdges
	assert.Equal(t, pop.EdgeCount(), created, "counters must match the standing graph")
}

// TestGenerate_ExitPredicate: at return, either the measured
// coefficient sits within tolerance of the target or the iteration
// ceiling fired.
func TestGenerate_ExitPredicate(t *testing.T) {
	cfg := config.Default()
	pop := testPopulation(80)
	stats := knows.New(cfg, quietOptions()).Generate(pop, 3, []float64{1.0}, 0)

	target := cfg.ClusteringCoefficient / 2.0
	converged := math.Abs(stats.FinalCC-target) <= knows.DefaultTolerance
	assert.True(t, converged || stats.Iterations == cfg.MaxIterations,
		"finalCC=%v target=%v iterations=%d", stats.FinalCC, target, stats.Iterations)
}

// TestGenerate_SinglePerson: nothing to wire, zero iterations.
func TestGenerate_SinglePerson(t *testing.T) {
	pop := people.NewPopulation([]*people.Person{people.NewPerson(1, 5)})
	stats := knows.New(config.Default(), quietOptions()).Generate(pop, 1, []float64{1.0}, 0)

	assert.Zero(t, stats.Iterations)
	assert.Zero(t, pop.EdgeCount())
	assert.Zero(t, stats.FinalCC)
	assert.Equal(t, 1, stats.ZeroDegree)
}

// TestGenerate_EmptyPopulation must not panic and reports nothing.
func TestGenerate_EmptyPopulation(t *testing.T) {
	pop := people.NewPopulation(nil)
	stats := knows.New(config.Default(), quietOptions()).Generate(pop, 1, []float64{1.0}, 0)

	assert.Zero(t, stats.Iterations)
	assert.Zero(t, stats.NumMisses)
}

// TestGenerate_ZeroCapacity: an all-zero population emits no edges and
// burns out the (shortened) iteration ceiling, since a zero measured
// coefficient can never reach a positive target.
func TestGenerate_ZeroCapacity(t *testing.T) {
	persons := make([]*people.Person, 10)
	for i := range persons {
		persons[i] = people.NewPerson(uint64(i)+1, 0)
	}
	pop := people.NewPopulation(persons)

	opts := quietOptions()
	opts.MaxIterations = 3
	stats := knows.New(config.Default(), opts).Generate(pop, 1, []float64{1.0}, 0)

	assert.Zero(t, pop.EdgeCount())
	assert.Zero(t, stats.FinalCC)
	assert.Equal(t, 3, stats.Iterations, "ceiling fires instead of spinning")
	assert.Equal(t, 10, stats.ZeroDegree)
}

// TestGenerate_DeficitAccounting: degree bookkeeping covers everyone.
func TestGenerate_DeficitAccounting(t *testing.T) {
	pop := testPopulation(50)
	stats := knows.New(config.Default(), quietOptions()).Generate(pop, 9, []float64{1.0}, 0)

	assert.GreaterOrEqual(t, stats.DeficitSum, int64(0))
	assert.GreaterOrEqual(t, stats.ExcessSum, int64(0))
	assert.LessOrEqual(t, stats.DeficitCount+stats.ExcessCount, pop.Len())
}

// TestNew_Defaults: zero options inherit configuration and package
// defaults.
func TestNew_Defaults(t *testing.T) {
	gen := knows.New(config.Default(), knows.Options{})
	pop := testPopulation(10)
	require.NotPanics(t, func() { gen.Generate(pop, 1, []float64{1.0}, 0) })
}
