package community

import "github.com/vertigraph/vertigraph/graph"

// Graph is the capability conjunction modularity and Louvain need: dense
// indexing for the internal weighted-graph representation, and full
// edge enumeration with weights to build it.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.EdgeReferences
}

// WeightFunc extracts an edge's scalar weight.
type WeightFunc func(e graph.Edge) float64

// weightedEdge is one unique edge of the internal representation,
// endpoints given as dense indices.
type weightedEdge struct {
	u, v int
	w    float64
}

// neighborWeight is one adjacency-list entry: a dense neighbor index and
// the weight of the edge to it.
type neighborWeight struct {
	idx    int
	weight float64
}

// weightedGraph is the dense, index-addressed representation shared by
// modularity computation and every Louvain level: edges (each listed
// once), an adjacency list per node, per-node degree (self-loops counted
// twice, matching the standard modularity convention), and the total
// edge weight m.
type weightedGraph struct {
	ids        []graph.NodeID
	edges      []weightedEdge
	adjacency  [][]neighborWeight
	degree     []float64
	m          float64
}

func buildWeightedGraph(g Graph, weight WeightFunc) *weightedGraph {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	wg := &weightedGraph{
		ids:       make([]graph.NodeID, n),
		adjacency: make([][]neighborWeight, n),
		degree:    make([]float64, n),
	}
	for i, node := range nodes {
		wg.ids[i] = node.ID()
	}

	for _, e := range graph.EdgesOf(g.Edges()) {
		u := g.ToIndex(e.From())
		v := g.ToIndex(e.To())
		w := weight(e)
		wg.m += w
		wg.edges = append(wg.edges, weightedEdge{u: u, v: v, w: w})
		if u == v {
			wg.degree[u] += 2 * w
			wg.adjacency[u] = append(wg.adjacency[u], neighborWeight{idx: u, weight: w})
			continue
		}
		wg.degree[u] += w
		wg.degree[v] += w
		wg.adjacency[u] = append(wg.adjacency[u], neighborWeight{idx: v, weight: w})
		wg.adjacency[v] = append(wg.adjacency[v], neighborWeight{idx: u, weight: w})
	}
	return wg
}
