package match

import "github.com/vertigraph/vertigraph/graph"

// GreedyMatching scans every node once in iteration order and, for each
// still-unmatched node, pairs it with its first still-unmatched neighbor.
// Not guaranteed maximum, but deterministic and linear in the edges
// examined — grounded on the teacher's tsp/matching.go greedyMatch, which
// runs the same nearest-free-partner pass over the Christofides odd-degree
// set.
func GreedyMatching(g Graph) *Matching {
	m := newMatching()
	matched := make(map[graph.NodeID]bool)

	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		u := n.ID()
		if matched[u] {
			continue
		}
		nbrs := g.Neighbors(u)
		for nbrs.Next() {
			v := nbrs.Node().ID()
			if v == u || matched[v] {
				continue
			}
			matched[u] = true
			matched[v] = true
			m.pair(u, v)
			break
		}
	}
	return m
}
