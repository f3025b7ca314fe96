// Package cluster - the statistical ledger and sentinel errors.
package cluster

import "errors"

// Sentinel errors for refinement.
var (
	// ErrSaturated indicates the refiner needed to move an edge
	// probability but every community was already pinned at the
	// relevant bound.
	ErrSaturated = errors.New("cluster: no adjustable community left")
)

// DefaultRefineTolerance is the convergence band for the estimated
// mean coefficient.
const DefaultRefineTolerance = 1e-3

// DefaultRefineMaxTries is the run of non-improving adjustment steps
// tolerated before the refiner gives up.
const DefaultRefineMaxTries = 5

// Info is the per-invocation statistical ledger: parallel arrays
// indexed by person position, plus per-community aggregates. All
// vectors are allocated once by NewInfo and never grow.
type Info struct {
	// IsCore marks persons classified into their community's core.
	IsCore []bool

	// CommunityID maps each person to its community.
	CommunityID []int

	// TargetDegree is the person's prescribed degree for this step.
	TargetDegree []float64

	// ExpectedCoreDegree is (|core|−1)·p for core members, 0 otherwise.
	ExpectedCoreDegree []float64

	// ExcedenceDegree is the target degree minus the expected core
	// degree: the stubs left for periphery and external wiring.
	ExcedenceDegree []float64

	// ExpectedPeripheryDegree is the share of the excedence assigned to
	// periphery neighbors by the packing walk.
	ExpectedPeripheryDegree []float64

	// ExpectedExternalDegree is the remainder wired across communities.
	ExpectedExternalDegree []float64

	// Coefficient is the analytic per-person clustering estimate.
	Coefficient []float64

	// CoreStubs aggregates expected external degree over each
	// community's core.
	CoreStubs []float64

	// CoreProbs mirrors each community's current edge probability.
	CoreProbs []float64

	// SumProbs is an advisory running aggregate adjusted by the
	// refiner; nothing downstream reads it.
	SumProbs float64

	// NumCommunities is the number of communities in this invocation.
	NumCommunities int
}

// NewInfo allocates a ledger for n persons and numCommunities
// communities. No further allocation happens during an invocation.
func NewInfo(n, numCommunities int) *Info {
	return &Info{
		IsCore:                  make([]bool, n),
		CommunityID:             make([]int, n),
		TargetDegree:            make([]float64, n),
		ExpectedCoreDegree:      make([]float64, n),
		ExcedenceDegree:         make([]float64, n),
		ExpectedPeripheryDegree: make([]float64, n),
		ExpectedExternalDegree:  make([]float64, n),
		Coefficient:             make([]float64, n),
		CoreStubs:               make([]float64, numCommunities),
		CoreProbs:               make([]float64, numCommunities),
		NumCommunities:          numCommunities,
	}
}

// RefineOptions configures the hill-climber.
type RefineOptions struct {
	// MinProb is the lower bound on any community's edge probability.
	MinProb float64

	// Tolerance is the acceptable |estimate − target| band.
	// Default: DefaultRefineTolerance.
	Tolerance float64

	// MaxTries is the tolerated run of non-improving steps.
	// Default: DefaultRefineMaxTries.
	MaxTries int
}

// DefaultRefineOptions returns production refiner settings with the
// given probability floor.
func DefaultRefineOptions(minProb float64) RefineOptions {
	return RefineOptions{
		MinProb:   minProb,
		Tolerance: DefaultRefineTolerance,
		MaxTries:  DefaultRefineMaxTries,
	}
}
