package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

const minPathNodes = 2

// Path adds a simple path P_n (n ≥ 2) to g: n fresh nodes, then edges
// (i-1)→i for i=1..n-1. It returns the new nodes in path order.
func Path(g Graph, n int, opts ...Option) ([]graph.NodeID, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	o := resolveOptions(opts)

	ids := make([]graph.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}

	for i := 1; i < n; i++ {
		if err := addEdge(g, ids[i-1], ids[i], o.weight(o.rng)); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}
	return ids, nil
}
