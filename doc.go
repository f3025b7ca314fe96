// Package knowsgen synthesizes undirected "knows" friendship graphs over
// large person populations, steering two competing global targets at once:
// each person's realized degree should approximate its prescribed target,
// and the graph's mean clustering coefficient should approximate an
// operator-supplied set-point.
//
// The pipeline, leaves first:
//
//	people/    — persons, capacity caps, sorted knows-sets, pluggable
//	             edge-rejection models
//	community/ — greedy contiguous partition of the (pre-sorted) person
//	             array into dense cores plus feasible peripheries
//	cluster/   — the analytic clustering-coefficient estimator, the
//	             stochastic density refiner, and measured per-node
//	             coefficients over a gonum graph view
//	knows/     — edge materialization (core-core, core-periphery,
//	             residual stub pairing) and the convergence driver
//	config/    — YAML configuration
//	cmd/knowsgen — CLI: synthesize a population, generate, export
//
// Everything is deterministic in (population, seed, percentages, step):
// a single seeded RNG stream feeds every random draw, in a fixed order.
//
//	go get github.com/katalvlaran/knowsgen
package knowsgen
