package mincut

import (
	"errors"

	"github.com/vertigraph/vertigraph/graph"
)

// ErrTooFewNodes is returned when g has fewer than two nodes, so no
// partition into two nonempty sets exists.
var ErrTooFewNodes = errors.New("mincut: graph must have at least two nodes")

// Graph is the capability conjunction GlobalMinCut needs: dense indexing
// to drive the adjacency matrix, and full edge enumeration with weights
// to build it.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.EdgeReferences
}

// WeightFunc extracts an edge's scalar weight. Edges are treated as
// undirected: From-To and To-From both contribute the same weight to
// the pair's total.
type WeightFunc func(e graph.Edge) float64

// Result is a global minimum cut: its total crossing weight, and one
// side of the partition (the other side is every node of g not listed
// here).
type Result struct {
	Weight    float64
	Partition []graph.NodeID
}

// buildAdjacencyMatrix sums edge weight between every node pair into a
// dense symmetric matrix, ignoring self-loops, which never cross a cut.
func buildAdjacencyMatrix(g Graph, weight WeightFunc) ([]graph.NodeID, [][]float64) {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	ids := make([]graph.NodeID, n)
	for i, node := range nodes {
		ids[i] = node.ID()
	}

	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}

	for _, e := range graph.EdgesOf(g.Edges()) {
		u := g.ToIndex(e.From())
		v := g.ToIndex(e.To())
		if u == v {
			continue
		}
		w := weight(e)
		adj[u][v] += w
		adj[v][u] += w
	}

	return ids, adj
}
