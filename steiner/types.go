package steiner

import (
	"errors"

	"github.com/vertigraph/vertigraph/graph"
)

// ErrDisconnected indicates two terminals have no connecting path, so no
// Steiner tree spanning every terminal exists.
var ErrDisconnected = errors.New("steiner: terminal unreachable from another terminal")

// Graph is the capability conjunction the metric-closure construction
// accepts: directed-capable neighbor/edge iteration for Dijkstra
// (undirected storages answer both directions identically). Kruskal's
// union-find runs over the internal closure graph, not over g.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.NeighborsDirected
	graph.EdgesDirected
}

// WeightFunc extracts an edge's scalar weight.
type WeightFunc func(e graph.Edge) float64

// Result is an approximated Steiner tree: its edges, drawn from the
// original graph, and their total weight.
type Result struct {
	Edges       []graph.Edge
	TotalWeight float64
}
