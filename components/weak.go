package components

import (
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/unionfind"
)

// Graph is the capability conjunction the directed operations in this
// package need (weak and strong components, condensation); Bridges,
// ArticulationPoints and TwoEdgeConnectedComponents take the undirected
// conjunctions in bridges.go and twoedge.go instead.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.NeighborsDirected
}

// WeaklyConnectedComponents partitions every node of g into components
// connected when direction is ignored, using a disjoint-set forest exactly
// as the teacher's Kruskal implementation does for cycle detection.
func WeaklyConnectedComponents(g Graph) [][]graph.NodeID {
	uf := unionfind.New(g.NodeBound())

	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		u := g.ToIndex(n.ID())
		succ := g.NeighborsDirected(n.ID(), graph.Outgoing)
		for succ.Next() {
			v := g.ToIndex(succ.Node().ID())
			uf.Union(u, v)
		}
	}

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
