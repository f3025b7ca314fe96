// Package cluster estimates and steers the clustering coefficient of
// the knows graph before a single edge exists.
//
// # Estimator
//
// For every community the estimator maintains a per-person ledger
// (Info) of expected degrees under the current intra-core edge
// probability: the expected core degree (|core|−1)·p, the excedence
// left over for periphery and external wiring, the periphery share
// assigned by a deterministic packing walk, and the external remainder
// that becomes a stub in the global configuration-model pass.
//
// From the ledger it derives an analytic per-person clustering
// coefficient under a random-wiring model of the external stubs, and a
// mean over the population. The estimate is cheap to update for a
// single community, which is what makes the refiner viable.
//
// # Refiner
//
// Refine is a bounded stochastic hill-climber: while the estimated
// mean is off target, it nudges a uniformly chosen community's edge
// probability up or down by 3/|core|, re-estimates just that
// community, and gives up after a run of non-improving steps or when
// every community is pinned at a bound.
//
// # Measurement
//
// LocalCoefficients computes the realized per-node clustering
// coefficients over any gonum graph.Undirected; PopulationGraph adapts
// a generated population into one.
package cluster
