// Package cluster - measured clustering over the realized graph.
package cluster

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/knowsgen/people"
)

// PopulationGraph builds an undirected gonum view of the realized
// knows graph. Node IDs coincide with person indices; isolated persons
// are present as isolated nodes.
//
// Complexity: O(V + E).
func PopulationGraph(pop *people.Population) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < pop.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < pop.Len(); i++ {
		for _, j := range pop.At(i).Knows() {
			if j > i {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	return g
}

// LocalCoefficients computes the standard per-node undirected
// clustering coefficient for node IDs 0..n−1 of g: the fraction of a
// node's neighbor pairs that are themselves connected. Nodes of degree
// below two score zero.
//
// Complexity: O(Σ k_i²) edge-existence probes over node degrees k_i.
func LocalCoefficients(g graph.Undirected, n int) []float64 {
	out := make([]float64, n)
	for id := 0; id < n; id++ {
		nbrs := graph.NodesOf(g.From(int64(id)))
		k := len(nbrs)
		if k < 2 {
			continue
		}

		var links int
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				if g.HasEdgeBetween(nbrs[a].ID(), nbrs[b].ID()) {
					links++
				}
			}
		}
		out[id] = 2 * float64(links) / float64(k*(k-1))
	}

	return out
}
