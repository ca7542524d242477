package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

// Graph is the capability conjunction every generator needs: it must
// accept new nodes and edges and report its own directedness, so
// spoke- and pair-emitting topologies (Star, Wheel, Complete,
// CompleteBipartite) know whether to mirror the reverse arc.
type Graph = graph.Create

// addEdge inserts u→v with weight w and reports a construction failure
// if the target storage rejected it under its own loop or multi-edge
// policy — the capability Build contract signals this as a negative
// EdgeID rather than an error return.
func addEdge(g Graph, u, v graph.NodeID, w float64) error {
	if id := g.AddEdge(u, v, w); id < 0 {
		return fmt.Errorf("AddEdge(%d->%d): %w", u, v, ErrConstructFailed)
	}
	return nil
}

// mirrorIfDirected adds the reverse arc v→u when g is directed, so
// that topologies defined as inherently symmetric (star spokes, wheel
// spokes, complete graphs, complete bipartite graphs) keep that
// symmetry even when realized on a directed storage. Undirected
// storages already expose u-v from both endpoints without a second
// insertion.
func mirrorIfDirected(g Graph, u, v graph.NodeID, w float64) error {
	if !g.IsDirected() {
		return nil
	}
	return addEdge(g, v, u, w)
}
