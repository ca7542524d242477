package components

import "github.com/vertigraph/vertigraph/graph"

// CondensationGraph is the capability conjunction Condensation needs on its
// input: directed neighbor iteration for Tarjan plus full edge enumeration
// to carry cross-component edges into the output.
type CondensationGraph interface {
	Graph
	graph.EdgesDirected
}

// Condensation collapses every strongly connected component of g into a
// single node of out, one component per SCC discovered by TarjanSCC, and
// adds an edge between two condensation nodes for every edge crossing
// between their components in g.
//
// When makeAcyclic is true, self-loops (an edge whose endpoints condense to
// the same component) and duplicate parallel edges between the same pair of
// components are both collapsed, guaranteeing out is a strict DAG — the
// distilled representation most callers want. When false, the raw
// multiplicity and any self-loop from an internally-cyclic component are
// preserved, which is occasionally useful as a diagnostic of how entangled
// a component is.
//
// Returns a map from every node of g to the condensation node in out that
// represents its component.
func Condensation(g CondensationGraph, out graph.Build, makeAcyclic bool) map[graph.NodeID]graph.NodeID {
	tarjan := NewTarjanSCC(g)
	comps := tarjan.Run()

	assign := make(map[graph.NodeID]graph.NodeID, len(comps))
	for _, comp := range comps {
		newID := out.AddNode(nil)
		for _, member := range comp {
			assign[member] = newID
		}
	}

	seen := make(map[[2]graph.NodeID]bool)
	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		edges := g.EdgesDirected(n.ID(), graph.Outgoing)
		for edges.Next() {
			e := edges.Edge()
			from, to := assign[e.From()], assign[e.To()]
			if makeAcyclic && from == to {
				continue
			}
			if makeAcyclic {
				key := [2]graph.NodeID{from, to}
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			out.AddEdge(from, to, nil)
		}
	}

	return assign
}
