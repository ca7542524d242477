package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

const minStarNodes = 2

// Star adds a star topology to g: one hub and n-1 leaves (n ≥ 2), with
// a spoke from the hub to every leaf, mirrored if g is directed. It
// returns the hub as the first element, followed by the leaves in
// order.
func Star(g Graph, n int, opts ...Option) ([]graph.NodeID, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < %d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	o := resolveOptions(opts)

	hub := g.AddNode(nil)
	ids := make([]graph.NodeID, n)
	ids[0] = hub

	for i := 1; i < n; i++ {
		leaf := g.AddNode(nil)
		ids[i] = leaf

		w := o.weight(o.rng)
		if err := addEdge(g, hub, leaf, w); err != nil {
			return nil, fmt.Errorf("Star: %w", err)
		}
		if err := mirrorIfDirected(g, hub, leaf, w); err != nil {
			return nil, fmt.Errorf("Star: %w", err)
		}
	}
	return ids, nil
}
