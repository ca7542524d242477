package match

import "github.com/vertigraph/vertigraph/graph"

// BipartiteMatching computes a maximum matching across the explicit
// partition (left, the complement implied by g's remaining nodes) using
// Kuhn's augmenting-path algorithm: try to match each left vertex in turn,
// rerouting already-matched right vertices along an alternating path when
// their current partner has another option. Runs in O(V·E).
func BipartiteMatching(g Graph, left []graph.NodeID) *Matching {
	matchR := make(map[graph.NodeID]graph.NodeID)

	var tryKuhn func(u graph.NodeID, visited map[graph.NodeID]bool) bool
	tryKuhn = func(u graph.NodeID, visited map[graph.NodeID]bool) bool {
		nbrs := g.Neighbors(u)
		for nbrs.Next() {
			v := nbrs.Node().ID()
			if visited[v] {
				continue
			}
			visited[v] = true
			owner, taken := matchR[v]
			if !taken || tryKuhn(owner, visited) {
				matchR[v] = u
				return true
			}
		}
		return false
	}

	for _, u := range left {
		tryKuhn(u, make(map[graph.NodeID]bool))
	}

	m := newMatching()
	for v, u := range matchR {
		m.pair(u, v)
	}
	return m
}
