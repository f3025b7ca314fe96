// Package knows - the generator and its convergence driver.
package knows

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/knowsgen/cluster"
	"github.com/katalvlaran/knowsgen/community"
	"github.com/katalvlaran/knowsgen/config"
	"github.com/katalvlaran/knowsgen/people"
)

// Generator synthesizes clustered knows graphs. Construct once with
// New; each Generate call is an independent, deterministic invocation.
type Generator struct {
	// targetCC is the internal set-point scale: the configured
	// clusteringCoefficient stored halved. The analytic estimator and
	// the measured post-hoc coefficient run on different scales, and
	// the whole feedback calibration is built around this halving —
	// changing it changes every generated graph.
	targetCC float64

	opts Options
}

// New builds a Generator from the operator configuration, with opts
// overriding individual knobs. Zero-valued option fields fall back to
// the configuration and then to package defaults.
func New(cfg config.Config, opts Options) *Generator {
	if opts.MinCommunityProb <= 0 {
		opts.MinCommunityProb = cfg.MinCommunityProb
	}
	if opts.MinCommunityProb <= 0 {
		opts.MinCommunityProb = DefaultMinCommunityProb
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.Damping <= 0 {
		opts.Damping = DefaultDamping
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = cfg.MaxIterations
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Lookahead <= 0 {
		opts.Lookahead = community.DefaultLookahead
	}
	if opts.Creator == nil {
		opts.Creator = people.CapCreator{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Generator{
		targetCC: cfg.ClusteringCoefficient / 2.0,
		opts:     opts,
	}
}

// Generate mutates pop in place: every person's knows-set is filled so
// that realized degrees approximate the per-step targets and the
// global clustering coefficient approximates the configured one.
//
// The call is single-threaded and always returns normally; every
// failure mode below the driver (infeasible partition probes, creator
// rejections, refiner saturation) is absorbed or counted, never
// raised.
//
// Determinism: the returned statistics and the resulting knows-sets
// are a pure function of (pop targets, seed, percentages, step,
// configured coefficient).
func (g *Generator) Generate(pop *people.Population, seed int64, percentages []float64, step int) *Stats {
	stats := &Stats{}
	rng := NewRNG(seed)
	n := pop.Len()

	infos := make([]community.PersonInfo, n)
	for i := 0; i < n; i++ {
		p := pop.At(i)
		infos[i] = community.PersonInfo{
			Index:          i,
			Degree:         p.TargetEdges(percentages, step),
			OriginalDegree: p.MaxKnows,
		}
	}

	comms := community.Partition(infos, community.Options{Lookahead: g.opts.Lookahead})
	for _, c := range comms {
		if err := community.Verify(c); err != nil {
			g.opts.Logger.Error("community invariant violated",
				"community", c.ID, "size", c.Size(), "err", err)
		}
	}

	if n < 2 {
		// Nothing to wire; skip the convergence loop entirely.
		g.fillReport(pop, infos, stats)
		g.report(stats)

		return stats
	}

	ci := cluster.NewInfo(n, len(comms))
	for _, c := range comms {
		c.P = 1.0
		ci.ComputeCommunity(c, 1.0)
	}
	for _, c := range comms {
		ci.EstimateCommunity(c, 1.0)
	}
	g.opts.Logger.Debug("estimated clustering ceiling",
		"maxCC", ci.MeanCoefficient(true), "communities", len(comms))
	for _, c := range comms {
		c.P = 0.5
		ci.EstimateCommunity(c, 0.5)
	}

	refOpts := cluster.RefineOptions{
		MinProb:   g.opts.MinCommunityProb,
		Tolerance: g.opts.Tolerance,
		MaxTries:  cluster.DefaultRefineMaxTries,
	}

	setPoint := g.targetCC
	for iter := 1; ; iter++ {
		if _, err := cluster.Refine(rng, ci, comms, setPoint, refOpts); err != nil {
			g.opts.Logger.Debug("refiner saturated", "setPoint", setPoint)
		}

		for _, c := range comms {
			g.materializeCommunity(rng, pop, ci, c, stats)
		}
		g.materializeResidual(rng, pop, comms, stats)

		measured := g.measuredCC(pop, infos)
		stats.Iterations = iter
		stats.FinalCC = measured

		delta := g.targetCC - measured
		if math.Abs(delta) <= g.opts.Tolerance {
			break
		}
		if iter >= g.opts.MaxIterations {
			g.opts.Logger.Warn("iteration ceiling reached before convergence",
				"iterations", iter, "target", g.targetCC, "measured", measured)

			break
		}

		// Rebuild from scratch: same RNG stream, fresh graph, set-point
		// moved by a damped feedback step.
		stats.resetCounters()
		pop.ClearKnows()
		setPoint += g.opts.Damping * delta
	}

	g.fillReport(pop, infos, stats)
	g.report(stats)

	return stats
}

// measuredCC computes the realized, per-person weighted clustering
// coefficient of the generated graph:
//
//	(1/N) · Σ cc(p) · d·(d−1) / (orig·(orig−1))
//
// over persons with orig > 1, where cc(p) is the measured local
// clustering, d the realized degree, and orig the capacity cap.
func (g *Generator) measuredCC(pop *people.Population, infos []community.PersonInfo) float64 {
	n := pop.Len()
	if n == 0 {
		return 0
	}

	ccs := cluster.LocalCoefficients(cluster.PopulationGraph(pop), n)

	var sum float64
	for i := range infos {
		orig := float64(infos[i].OriginalDegree)
		if orig <= 1 {
			continue
		}
		d := float64(pop.At(i).Degree())
		sum += ccs[i] * d * (d - 1) / (orig * (orig - 1))
	}

	return sum / float64(n)
}

// fillReport derives the degree-accounting report fields from the
// realized graph.
func (g *Generator) fillReport(pop *people.Population, infos []community.PersonInfo, stats *Stats) {
	stats.ExcessCount, stats.ExcessSum = 0, 0
	stats.DeficitCount, stats.DeficitSum = 0, 0
	stats.ZeroDegree = 0

	for i := range infos {
		realized := int64(pop.At(i).Degree())
		target := int64(infos[i].Degree)
		switch {
		case realized > target:
			stats.ExcessCount++
			stats.ExcessSum += realized - target
		case realized < target:
			stats.DeficitCount++
			stats.DeficitSum += target - realized
		}
		if realized == 0 {
			stats.ZeroDegree++
		}
	}
}

// report emits the human-readable completion statistics.
func (g *Generator) report(stats *Stats) {
	g.opts.Logger.Info("knows generation complete",
		"coreCoreEdges", stats.NumCoreCoreEdges,
		"corePeripheryEdges", stats.NumCorePeripheryEdges,
		"coreExternalEdges", stats.NumCoreExternalEdges,
		"misses", stats.NumMisses,
		"excessCount", stats.ExcessCount,
		"excessSum", stats.ExcessSum,
		"deficitCount", stats.DeficitCount,
		"deficitSum", stats.DeficitSum,
		"zeroDegree", stats.ZeroDegree,
		"iterations", stats.Iterations,
		"clusteringCoefficient", stats.FinalCC,
	)
}
