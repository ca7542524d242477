package chordal

import "github.com/vertigraph/vertigraph/graph"

// Graph is the capability conjunction MCS needs: dense indexing to back
// the weight/bucket arrays, and undirected neighbor iteration to relax
// weights on each pick.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.Neighbors
}
