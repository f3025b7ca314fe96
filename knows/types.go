// Package knows - options, statistics, and defaults.
package knows

import (
	"log/slog"

	"github.com/katalvlaran/knowsgen/community"
	"github.com/katalvlaran/knowsgen/people"
)

// Default knobs.
const (
	// DefaultTolerance is the acceptable |measured − target| band for
	// the driver's convergence loop.
	DefaultTolerance = 1e-3

	// DefaultDamping scales the feedback step applied to the internal
	// set-point between convergence iterations.
	DefaultDamping = 0.8

	// DefaultMaxIterations caps the convergence loop. The loop is
	// bounded only by convergence otherwise; the cap turns pathological
	// non-convergence into a logged warning instead of a spin.
	DefaultMaxIterations = 32

	// DefaultMinCommunityProb is the floor on intra-core densities.
	DefaultMinCommunityProb = 0.1
)

// Options configures a Generator. The zero value is usable: New fills
// every zero field from the configuration and then from the package
// defaults.
type Options struct {
	// MinCommunityProb floors every community's edge probability.
	MinCommunityProb float64

	// Tolerance is the convergence band for both the refiner and the
	// outer driver loop. Default: DefaultTolerance.
	Tolerance float64

	// Damping scales the set-point feedback step. Default: 0.8.
	Damping float64

	// MaxIterations caps the driver loop. Default: 32.
	MaxIterations int

	// Lookahead is the partitioner's probe budget. Default: 5.
	Lookahead int

	// Creator admits or rejects proposed edges. Default: CapCreator.
	Creator people.EdgeCreator

	// Logger receives the completion report, invariant diagnostics, and
	// the iteration-ceiling warning. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns production generator settings.
func DefaultOptions() Options {
	return Options{
		MinCommunityProb: DefaultMinCommunityProb,
		Tolerance:        DefaultTolerance,
		Damping:          DefaultDamping,
		MaxIterations:    DefaultMaxIterations,
		Lookahead:        community.DefaultLookahead,
		Creator:          people.CapCreator{},
	}
}

// Stats is the observable outcome of one Generate call. Counter fields
// accumulate during edge materialization; report fields are filled
// once at completion.
type Stats struct {
	// NumCoreCoreEdges counts successful intra-core insertions.
	NumCoreCoreEdges int `json:"numCoreCoreEdges"`

	// NumCorePeripheryEdges counts successful core-periphery insertions.
	NumCorePeripheryEdges int `json:"numCorePeripheryEdges"`

	// NumCoreExternalEdges counts successful residual stub pairings.
	NumCoreExternalEdges int `json:"numCoreExternalEdges"`

	// NumMisses counts rejected proposals: creator rejections and
	// self-pairs in the residual pass.
	NumMisses int `json:"numMisses"`

	// Iterations is the number of driver convergence iterations run.
	Iterations int `json:"iterations"`

	// FinalCC is the realized weighted clustering coefficient.
	FinalCC float64 `json:"finalClusteringCoefficient"`

	// ExcessCount / ExcessSum cover persons whose realized degree
	// exceeds the prescribed target, and by how much in total.
	ExcessCount int   `json:"excessCount"`
	ExcessSum   int64 `json:"excessSum"`

	// DeficitCount / DeficitSum cover persons left short of target.
	DeficitCount int   `json:"deficitCount"`
	DeficitSum   int64 `json:"deficitSum"`

	// ZeroDegree counts persons left with no knows edges at all.
	ZeroDegree int `json:"zeroDegree"`
}

// resetCounters clears the per-iteration edge counters. Report fields
// are overwritten at completion and need no reset.
func (s *Stats) resetCounters() {
	s.NumCoreCoreEdges = 0
	s.NumCorePeripheryEdges = 0
	s.NumCoreExternalEdges = 0
	s.NumMisses = 0
}
