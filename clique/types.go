package clique

import "github.com/vertigraph/vertigraph/graph"

// Graph is the capability conjunction clique search needs on an
// undirected input.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.Neighbors
}

func adjacencySets(g Graph) ([]graph.NodeID, []map[int]bool) {
	nodes := graph.NodesOf(g.Nodes())
	adj := make([]map[int]bool, len(nodes))
	for i, n := range nodes {
		adj[i] = make(map[int]bool)
		_ = n
	}
	ids := make([]graph.NodeID, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	for i, n := range nodes {
		nbrs := g.Neighbors(n.ID())
		for nbrs.Next() {
			j := g.ToIndex(nbrs.Node().ID())
			if j != i {
				adj[i][j] = true
			}
		}
	}
	return ids, adj
}
