// Package knows turns degree targets into actual friendship edges.
//
// A Generator invocation runs the whole pipeline over one pre-sorted
// population shard:
//
//  1. Partition the shard into communities (package community).
//  2. Bootstrap the expected-degree ledger and the analytic clustering
//     estimate (package cluster), probing the maximum achievable
//     coefficient at full density before settling at p = 0.5.
//  3. Refine per-community densities toward an internal set-point.
//  4. Materialize edges in three passes: Bernoulli core-core trials,
//     the deterministic core-periphery budget walk, and a shuffled
//     stub-pairing pass over the residual core degree deficit.
//  5. Measure the realized clustering coefficient; if it is off the
//     external target, wipe the graph and repeat with the internal
//     set-point moved by a damped feedback step.
//
// Determinism: one RNG, seeded once per Generate call, feeds every
// random draw — refiner community picks, core-core Bernoulli trials,
// both residual shuffles, and any draws inside the EdgeCreator — in a
// fixed order. Two calls with identical inputs produce identical
// knows-sets and statistics. The convergence loop never reseeds.
//
// A single invocation is single-threaded; an upstream orchestrator may
// run one invocation per disjoint shard.
package knows
