package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

const minWheelNodes = 4 // outer ring C_{n-1} must itself have ≥ 3 nodes

// Wheel adds a wheel W_n = C_{n-1} + hub (n ≥ 4) to g: an outer cycle
// of n-1 nodes built via Cycle, plus a hub connected to every ring
// node. It returns the hub as the first element, followed by the ring
// nodes in cycle order.
func Wheel(g Graph, n int, opts ...Option) ([]graph.NodeID, error) {
	if n < minWheelNodes {
		return nil, fmt.Errorf("Wheel: n=%d < %d: %w", n, minWheelNodes, ErrTooFewNodes)
	}
	o := resolveOptions(opts)

	// Pass the already-resolved rng/weight through explicitly rather
	// than the raw opts, so a WithSeed option isn't re-resolved into a
	// second, independently seeded stream for the ring alone.
	ring, err := Cycle(g, n-1, WithRand(o.rng), WithWeight(o.weight))
	if err != nil {
		return nil, fmt.Errorf("Wheel: base cycle: %w", err)
	}

	hub := g.AddNode(nil)
	for _, rim := range ring {
		w := o.weight(o.rng)
		if err := addEdge(g, hub, rim, w); err != nil {
			return nil, fmt.Errorf("Wheel: %w", err)
		}
		if err := mirrorIfDirected(g, hub, rim, w); err != nil {
			return nil, fmt.Errorf("Wheel: %w", err)
		}
	}

	return append([]graph.NodeID{hub}, ring...), nil
}
