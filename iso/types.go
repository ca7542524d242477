package iso

import "github.com/vertigraph/vertigraph/graph"

// Graph is the capability conjunction VF2 needs on each input: dense
// indexing for the recursive mapping's scratch arrays, an O(1) adjacency
// witness to check consistency against the partial mapping, edge/node
// counts for the cheap up-front rejection, and directed neighbor
// iteration to compute degrees.
type Graph interface {
	graph.NodeCompactIndexable
	graph.EdgeCount
	graph.AdjacencyMatrix
	graph.GraphProp
	graph.NeighborsDirected
}

// NodeMatch reports whether a candidate pair of node weights is
// semantically compatible. NodeWeight looks the weight up by index's
// underlying NodeID.
type NodeMatch func(w0, w1 interface{}) bool

// EdgeMatch reports whether a candidate pair of edge weights is
// semantically compatible.
type EdgeMatch func(w0, w1 interface{}) bool

func degree(g Graph, id graph.NodeID) int {
	n := 0
	out := g.NeighborsDirected(id, graph.Outgoing)
	for out.Next() {
		n++
	}
	if g.IsDirected() {
		in := g.NeighborsDirected(id, graph.Incoming)
		for in.Next() {
			n++
		}
	}
	return n
}
