package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

const minCycleNodes = 3

// Cycle adds an n-node simple cycle C_n (n ≥ 3) to g: n fresh nodes,
// then ring edges i→(i+1 mod n) for i=0..n-1, each with an
// independently sampled weight. It returns the new nodes in ring
// order.
func Cycle(g Graph, n int, opts ...Option) ([]graph.NodeID, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	o := resolveOptions(opts)

	ids := make([]graph.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}

	for i := 0; i < n; i++ {
		if err := addEdge(g, ids[i], ids[(i+1)%n], o.weight(o.rng)); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}
	return ids, nil
}
