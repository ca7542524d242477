package dag

import (
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/traverse"
)

// Graph is the capability conjunction the directed operations in this
// package need; IsAcyclicUndirected takes UndirectedGraph instead, and
// transitive reduction and closure add dense indexing via CompactGraph.
type Graph interface {
	graph.NodeIdentifiers
	graph.NeighborsDirected
}

// TopologicalSort re-exports traverse.TopologicalSort under the DAG
// component's own name; the two are the same walk. Accepts the same
// options, including traverse.WithTopoWorkspace for reusing the sort's
// scratch state across calls.
func TopologicalSort(g Graph, opts ...traverse.TopoOption) ([]graph.NodeID, error) {
	return traverse.TopologicalSort(g, opts...)
}

// IsAcyclic reports whether g has no directed cycle.
func IsAcyclic(g Graph) bool {
	_, err := traverse.TopologicalSort(g)
	return err == nil
}
