package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

const minRegularNodes = 1
const maxStubMatchingAttempts = 3

// RandomRegular adds an undirected, simple d-regular graph over n
// nodes (n ≥ 1, 0 ≤ d < n, n*d even) to g via stub-matching: d stubs
// per node, shuffled and paired, rejecting a realization with a
// self-pair or a repeated pair and reshuffling, within a small bounded
// number of attempts — simplicity is enforced by this validation
// itself, independent of whatever loop/multi-edge policy the target
// storage happens to carry, since a d-regular graph is by definition
// simple. Directed storages report ErrUnsupportedGraphMode. Requires
// an RNG (WithSeed/WithRand).
func RandomRegular(g Graph, n, d int, opts ...Option) ([]graph.NodeID, error) {
	if g.IsDirected() {
		return nil, fmt.Errorf("RandomRegular: only undirected graphs are supported: %w", ErrUnsupportedGraphMode)
	}
	if n < minRegularNodes {
		return nil, fmt.Errorf("RandomRegular: n=%d < %d: %w", n, minRegularNodes, ErrTooFewNodes)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("RandomRegular: degree must be in [0,%d), got %d: %w", n, d, ErrTooFewNodes)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("RandomRegular: n*d must be even (n=%d, d=%d): %w", n, d, ErrTooFewNodes)
	}
	o := resolveOptions(opts)
	if o.rng == nil {
		return nil, fmt.Errorf("RandomRegular: %w", ErrNeedRandSource)
	}

	ids := make([]graph.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}

	stubCount := n * d
	if stubCount == 0 {
		return ids, nil
	}
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		o.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[[2]int]bool, stubCount/2)
		valid := true
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if seen[key] {
				valid = false
				break
			}
			seen[key] = true
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			u, v := ids[stubs[i]], ids[stubs[i+1]]
			if err := addEdge(g, u, v, o.weight(o.rng)); err != nil {
				return nil, fmt.Errorf("RandomRegular: %w", err)
			}
		}
		return ids, nil
	}

	return nil, fmt.Errorf("RandomRegular: failed to realize a simple pairing after %d attempts: %w",
		maxStubMatchingAttempts, ErrConstructFailed)
}
