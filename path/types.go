package path

import (
	"context"
	"errors"

	"github.com/vertigraph/vertigraph/graph"
)

// Number is the constraint satisfied by any cost type a path algorithm can
// accumulate and compare.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// WeightFunc extracts a cost of type N from an edge. Callers whose storage
// keeps weights via graph.DataMap rather than graph.WeightedEdge can derive
// N from EdgeWeight instead of Weight().
type WeightFunc[N Number] func(e graph.Edge) N

// Graph is the capability conjunction every single-source algorithm in this
// package needs.
type Graph interface {
	graph.NodeIdentifiers
	graph.NeighborsDirected
	graph.EdgesDirected
}

// Sentinel errors shared by every algorithm in this package.
var (
	// ErrNegativeWeight is returned by Dijkstra and A*, which require
	// non-negative edge weights to guarantee correctness.
	ErrNegativeWeight = errors.New("path: negative edge weight")

	// ErrNegativeCycle is returned by Bellman-Ford and SPFA when a
	// negative-weight cycle reachable from the source is detected, and by
	// Floyd-Warshall and Johnson when the graph has any negative cycle.
	ErrNegativeCycle = errors.New("path: negative cycle detected")

	// ErrSourceNotFound names a source node that is absent from the graph.
	// No function in this package returns it.
	ErrSourceNotFound = errors.New("path: source node not found")
)

// PredecessorMode selects whether an algorithm records a predecessor map
// for path reconstruction (costing O(V) extra memory) or discards it.
type PredecessorMode int

const (
	// Discard skips predecessor bookkeeping; only distances are computed.
	Discard PredecessorMode = iota
	// Record keeps a predecessor map so PathTo can reconstruct a route.
	Record
)

// Option configures a shortest-path call via functional arguments.
type Option[N Number] func(*options[N])

type options[N Number] struct {
	ctx          context.Context
	predecessors PredecessorMode
}

func defaultOptions[N Number]() options[N] {
	return options[N]{ctx: context.Background(), predecessors: Discard}
}

// WithContext sets a context for cancellation.
func WithContext[N Number](ctx context.Context) Option[N] {
	return func(o *options[N]) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithPredecessors enables or disables predecessor-map bookkeeping.
func WithPredecessors[N Number](mode PredecessorMode) Option[N] {
	return func(o *options[N]) { o.predecessors = mode }
}

// Result holds the outcome of a single-source shortest-path computation.
// Dist holds only reachable nodes; a missing key means unreachable.
type Result[N Number] struct {
	Dist map[graph.NodeID]N
	Prev map[graph.NodeID]graph.NodeID
}

// PathTo reconstructs the source-to-dest path by walking Prev backwards.
// Returns false if dest is unreachable or Prev was not recorded.
func (r *Result[N]) PathTo(dest graph.NodeID) ([]graph.NodeID, bool) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, false
	}
	if r.Prev == nil {
		return nil, false
	}
	path := []graph.NodeID{dest}
	cur := dest
	for {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// item is a (node, cost) pair ordered by cost in the lazy-decrease-key heaps
// used throughout this package.
type item[N Number] struct {
	id   graph.NodeID
	dist N
}

type costHeap[N Number] []*item[N]

func (h costHeap[N]) Len() int            { return len(h) }
func (h costHeap[N]) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h costHeap[N]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap[N]) Push(x interface{}) { *h = append(*h, x.(*item[N])) }
func (h *costHeap[N]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
