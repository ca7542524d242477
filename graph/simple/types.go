package simple

import (
	"errors"
	"sync"

	"github.com/vertigraph/vertigraph/graph"
)

// Sentinel errors for simple graph operations, mirroring the teacher's
// core package convention (core.ErrVertexNotFound, core.ErrEdgeNotFound, ...).
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("simple: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("simple: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("simple: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("simple: multi-edges not allowed")
)

// Option configures a Graph before construction.
type Option func(*Graph)

// Directed sets the graph's edges to be directed.
func Directed() Option { return func(g *Graph) { g.directed = true } }

// AllowLoops permits self-loop edges.
func AllowLoops() Option { return func(g *Graph) { g.allowLoops = true } }

// AllowMultiEdges permits parallel edges between the same endpoints.
func AllowMultiEdges() Option { return func(g *Graph) { g.allowMulti = true } }

type nodeEntry struct {
	id     graph.NodeID
	weight interface{}
}

type edgeEntry struct {
	id       graph.EdgeID
	from, to graph.NodeID
	weight   interface{}
}

// Graph is a mutex-protected adjacency-list graph, directed or undirected,
// optionally allowing self-loops and parallel edges. It implements every
// capability interface in package graph.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool
	allowMulti bool

	nextNode graph.NodeID
	nextEdge graph.EdgeID

	nodes map[graph.NodeID]*nodeEntry
	edges map[graph.EdgeID]*edgeEntry

	// order/pos implement a dense, hole-free index space: removals swap the
	// last element into the removed slot so NodeBound() == NumNodes() always.
	order []graph.NodeID
	pos   map[graph.NodeID]int

	// out holds, per node, the edge IDs leaving it (directed) or incident to
	// it (undirected). in holds edge IDs entering a node; unused when undirected.
	out map[graph.NodeID][]graph.EdgeID
	in  map[graph.NodeID][]graph.EdgeID

	// edgeOrder records edge insertion order for deterministic, single-pass
	// iteration over Edges() independent of the per-node adjacency lists.
	edgeOrder []graph.EdgeID
}

// New constructs an empty Graph. By default it is undirected, with no
// self-loops and no parallel edges.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes: make(map[graph.NodeID]*nodeEntry),
		edges: make(map[graph.EdgeID]*edgeEntry),
		pos:   make(map[graph.NodeID]int),
		out:   make(map[graph.NodeID][]graph.EdgeID),
		in:    make(map[graph.NodeID][]graph.EdgeID),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
