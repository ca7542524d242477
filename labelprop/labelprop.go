package labelprop

import (
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/traverse"
)

// Propagate runs k-hop majority-vote label propagation over g. Every
// node starts labeled with its own identifier, or an Options-provided
// seed label. Each round, every node simultaneously recomputes its label
// as the most common label among the nodes in its k-hop neighborhood
// (itself excluded), ties broken toward the smallest label value;
// propagation stops once a round leaves every label unchanged, or the
// iteration cap is reached.
func Propagate(g Graph, opts ...Option) *Result {
	o := resolveOptions(opts)
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	if n == 0 {
		return &Result{Labels: map[graph.NodeID]graph.NodeID{}, Converged: true}
	}

	ids := make([]graph.NodeID, n)
	for i, node := range nodes {
		ids[i] = node.ID()
	}

	neighborhoods := make([][]int, n)
	for i, id := range ids {
		res, err := traverse.BFS(g, id, traverse.WithBFSMaxDepth(o.hops))
		if err != nil {
			continue
		}
		for _, visited := range res.Order {
			if visited == id {
				continue
			}
			neighborhoods[i] = append(neighborhoods[i], g.ToIndex(visited))
		}
	}

	labels := make([]graph.NodeID, n)
	for i, id := range ids {
		if seeded, ok := o.seed[id]; ok {
			labels[i] = seeded
		} else {
			labels[i] = id
		}
	}

	converged := false
	iterations := 0
	next := make([]graph.NodeID, n)
	for ; iterations < o.maxIterations; iterations++ {
		changed := false
		for i := range ids {
			next[i] = majorityLabel(labels, neighborhoods[i], labels[i])
			if next[i] != labels[i] {
				changed = true
			}
		}
		copy(labels, next)
		if !changed {
			converged = true
			iterations++
			break
		}
	}

	out := make(map[graph.NodeID]graph.NodeID, n)
	for i, id := range ids {
		out[id] = labels[i]
	}
	return &Result{Labels: out, Iterations: iterations, Converged: converged}
}

// majorityLabel returns the most frequent label among neighborhood
// indices into labels, breaking ties toward the smallest label value,
// and falling back to fallback (the node's current label) if the
// neighborhood is empty.
func majorityLabel(labels []graph.NodeID, neighborhood []int, fallback graph.NodeID) graph.NodeID {
	if len(neighborhood) == 0 {
		return fallback
	}
	counts := make(map[graph.NodeID]int, len(neighborhood))
	for _, idx := range neighborhood {
		counts[labels[idx]]++
	}
	var best graph.NodeID
	bestCount := -1
	for label, count := range counts {
		if count > bestCount || (count == bestCount && label < best) {
			best = label
			bestCount = count
		}
	}
	return best
}
