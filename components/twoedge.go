package components

import (
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/unionfind"
)

// CompactUndirectedGraph adds dense indexing to UndirectedGraph, needed to
// back a union-find forest.
type CompactUndirectedGraph interface {
	UndirectedGraph
	graph.NodeCompactIndexable
	graph.EdgeReferences
}

// TwoEdgeConnectedComponents partitions g's nodes into maximal subsets that
// remain connected after any single edge is removed — equivalently, the
// connected components of g once every bridge is deleted.
func TwoEdgeConnectedComponents(g CompactUndirectedGraph) [][]graph.NodeID {
	bridgeSet := make(map[[2]graph.NodeID]bool)
	for _, b := range Bridges(g) {
		bridgeSet[b] = true
		bridgeSet[[2]graph.NodeID{b[1], b[0]}] = true
	}

	uf := unionfind.New(g.NodeBound())
	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		if bridgeSet[[2]graph.NodeID{e.From(), e.To()}] {
			continue
		}
		uf.Union(g.ToIndex(e.From()), g.ToIndex(e.To()))
	}

	nodes := graph.NodesOf(g.Nodes())
	groups := make(map[int][]graph.NodeID)
	var order []int
	for _, n := range nodes {
		root := uf.Find(g.ToIndex(n.ID()))
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], n.ID())
	}

	out := make([][]graph.NodeID, 0, len(order))
	for _, root := range order {
		out = append(out, groups[root])
	}
	return out
}
