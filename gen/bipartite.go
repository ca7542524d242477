package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

const minPartitionSize = 1

// CompleteBipartite adds K_{n1,n2} (n1, n2 ≥ 1) to g: n1 left nodes,
// n2 right nodes, then every cross pair left[i]→right[j], mirrored if
// g is directed. It returns the left partition followed by the right
// partition, each in index order.
func CompleteBipartite(g Graph, n1, n2 int, opts ...Option) (left, right []graph.NodeID, err error) {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return nil, nil, fmt.Errorf("CompleteBipartite: n1=%d, n2=%d (each must be ≥ %d): %w",
			n1, n2, minPartitionSize, ErrTooFewNodes)
	}
	o := resolveOptions(opts)

	left = make([]graph.NodeID, n1)
	for i := range left {
		left[i] = g.AddNode(nil)
	}
	right = make([]graph.NodeID, n2)
	for j := range right {
		right[j] = g.AddNode(nil)
	}

	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			w := o.weight(o.rng)
			if err := addEdge(g, left[i], right[j], w); err != nil {
				return nil, nil, fmt.Errorf("CompleteBipartite: %w", err)
			}
			if err := mirrorIfDirected(g, left[i], right[j], w); err != nil {
				return nil, nil, fmt.Errorf("CompleteBipartite: %w", err)
			}
		}
	}
	return left, right, nil
}
