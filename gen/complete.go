package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

const minCompleteNodes = 1

// Complete adds the complete simple graph K_n (n ≥ 1) to g: n fresh
// nodes, then every unordered pair {i,j} with i<j, mirrored if g is
// directed. It returns the new nodes in index order.
func Complete(g Graph, n int, opts ...Option) ([]graph.NodeID, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	o := resolveOptions(opts)

	ids := make([]graph.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := o.weight(o.rng)
			if err := addEdge(g, ids[i], ids[j], w); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
			if err := mirrorIfDirected(g, ids[i], ids[j], w); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}
	return ids, nil
}
