package graph

// NodeCount reports the number of nodes in a graph.
type NodeCount interface {
	NumNodes() int
}

// EdgeCount reports the number of edges in a graph.
type EdgeCount interface {
	NumEdges() int
}

// NodeIdentifiers iterates every node identifier in a graph.
type NodeIdentifiers interface {
	Nodes() Nodes
}

// NodeReferences iterates nodes together with their associated weight, when
// the storage keeps one. Graphs with no node payload may return nil weights.
type NodeReferences interface {
	NodeIdentifiers
	NodeWeight(id NodeID) (interface{}, bool)
}

// EdgeReferences iterates every edge in a graph, endpoints included.
type EdgeReferences interface {
	Edges() Edges
	EdgeWeight(id EdgeID) (interface{}, bool)
}

// Neighbors iterates the neighbors of a node. On an undirected graph these
// are all adjacent nodes; on a directed graph the storage decides, and
// graph/simple yields successors only (as NeighborsDirected with Outgoing).
type Neighbors interface {
	Neighbors(id NodeID) Nodes
}

// NeighborsDirected iterates the neighbors of a node restricted to one
// direction. Undirected storages may implement this trivially by ignoring
// the direction argument.
type NeighborsDirected interface {
	NeighborsDirected(id NodeID, dir Direction) Nodes
}

// EdgesOfNode iterates the edges incident to a node, without regard to direction.
type EdgesOfNode interface {
	EdgesOf(id NodeID) Edges
}

// EdgesDirected iterates the edges incident to a node restricted to one
// direction.
type EdgesDirected interface {
	EdgesDirected(id NodeID, dir Direction) Edges
}

// GraphProp reports static properties of a graph's structure.
type GraphProp interface {
	IsDirected() bool
}

// NodeIndexable maps node identifiers to and from a dense integer range.
// ToIndex must be amortised O(1); FromIndex may fail (return false) for
// indices never assigned, which is legal for stable-index storages that
// retain holes after removal.
type NodeIndexable interface {
	ToIndex(id NodeID) int
	FromIndex(i int) (NodeID, bool)
	// NodeBound is the smallest integer strictly greater than every live
	// node's index.
	NodeBound() int
}

// NodeCompactIndexable is a NodeIndexable that additionally guarantees
// NodeBound() == NumNodes(), i.e. the index space has no holes. Algorithms
// that want a dense scratch array (Floyd-Warshall, PageRank) require this.
type NodeCompactIndexable interface {
	NodeIndexable
	NodeCount
}

// VisitMap is a per-traversal visited-set. Implementations are provided by
// package visitmap; this interface lives here to let Visitable be declared
// without an import cycle.
type VisitMap interface {
	// Visit marks id visited and reports whether it was newly marked.
	Visit(id NodeID) bool
	// IsVisited reports whether id has been marked.
	IsVisited(id NodeID) bool
	// Clear resets every mark, allowing the map to be reused across calls.
	Clear()
}

// Visitable constructs a VisitMap sized appropriately for a graph.
type Visitable interface {
	NewVisitMap() VisitMap
}

// AdjacencyMatrix produces an opaque adjacency witness usable for O(1)
// is-adjacent queries. The witness's internal shape is at the storage's
// discretion.
type AdjacencyMatrix interface {
	AdjacencyMatrix() AdjacencyWitness
}

// AdjacencyWitness answers is-adjacent queries consistent with the edge
// iteration of the graph it was produced from.
type AdjacencyWitness interface {
	IsAdjacent(u, v NodeID) bool
}

// DataMap looks up the weight payload associated with a node or edge.
type DataMap interface {
	NodeWeight(id NodeID) (interface{}, bool)
	EdgeWeight(id EdgeID) (interface{}, bool)
}

// Build lets an algorithm construct a graph as output (e.g. MST, condensation).
type Build interface {
	AddNode(w interface{}) NodeID
	AddEdge(u, v NodeID, w interface{}) EdgeID
	// UpdateEdge upserts the edge between u and v, creating it if absent.
	UpdateEdge(u, v NodeID, w interface{}) EdgeID
}

// Create is a Build that also reports its directedness; mst.Materialize
// takes one, while components.Condensation needs only Build.
type Create interface {
	Build
	GraphProp
}
