package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

const minRandomSparseNodes = 1
const probMin, probMax = 0.0, 1.0

// RandomSparse adds an Erdős-Rényi-style sparse graph to g: n fresh
// nodes, then each admissible pair included independently with
// probability p. Undirected graphs consider unordered pairs {i,j},
// i<j; directed graphs consider every ordered pair (i,j), including
// self-loops — trials the target storage's own loop or multi-edge
// policy rejects are silently skipped rather than treated as failure.
// Sampling requires an RNG (WithSeed/WithRand) whenever 0 < p < 1.
func RandomSparse(g Graph, n int, p float64, opts ...Option) ([]graph.NodeID, error) {
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < %d: %w", n, minRandomSparseNodes, ErrTooFewNodes)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomSparse: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
	}
	o := resolveOptions(opts)
	if o.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	ids := make([]graph.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}

	include := func() bool {
		if o.rng == nil {
			return p == probMax
		}
		return o.rng.Float64() < p
	}

	trial := func(u, v graph.NodeID) {
		if !include() {
			return
		}
		g.AddEdge(u, v, o.weight(o.rng)) // a negative EdgeID means the storage's own policy rejected it
	}

	if g.IsDirected() {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				trial(ids[i], ids[j])
			}
		}
	} else {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				trial(ids[i], ids[j])
			}
		}
	}
	return ids, nil
}
