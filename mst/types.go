package mst

import (
	"errors"

	"github.com/vertigraph/vertigraph/graph"
)

// ErrDisconnected indicates the graph is not fully connected, so no
// spanning tree can cover every node.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrRootNotFound indicates Prim's starting vertex does not exist in the
// graph.
var ErrRootNotFound = errors.New("mst: root not found")

// Graph is the capability conjunction Kruskal needs: dense indexing to
// back a union-find forest, plus full edge enumeration to sort.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.EdgeReferences
}

// PrimGraph is the capability conjunction Prim needs: edge-of-node
// iteration to discover frontier candidates from the growing tree.
type PrimGraph interface {
	graph.NodeIdentifiers
	graph.EdgesOfNode
}

// WeightFunc extracts an edge's scalar weight.
type WeightFunc func(e graph.Edge) float64

// Result is a computed spanning tree: its edges (drawn from the input
// graph) and their total weight.
type Result struct {
	Edges       []graph.Edge
	TotalWeight float64
}

// Materialize copies a Result's nodes and edges into a fresh graph built
// via out, returning the mapping from original node id to the id it was
// assigned in out. Weights are copied using weight so out carries the
// same tree costs as the source.
func Materialize(res *Result, out graph.Create, weight WeightFunc) map[graph.NodeID]graph.NodeID {
	assign := make(map[graph.NodeID]graph.NodeID)
	ensure := func(id graph.NodeID) graph.NodeID {
		if mapped, ok := assign[id]; ok {
			return mapped
		}
		mapped := out.AddNode(nil)
		assign[id] = mapped
		return mapped
	}
	for _, e := range res.Edges {
		u := ensure(e.From())
		v := ensure(e.To())
		out.AddEdge(u, v, weight(e))
	}
	return assign
}
