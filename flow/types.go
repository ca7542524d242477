package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// EdgeError is returned when an edge carries a negative capacity.
type EdgeError struct {
	From, To graph.NodeID
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %g", e.From, e.To, e.Cap)
}

// Graph is the capability conjunction every flow algorithm needs: directed
// neighbor and edge iteration to walk both the forward network and, by
// reading an edge's reverse direction, its implied residual arc.
type Graph interface {
	graph.NodeIdentifiers
	graph.EdgesDirected
}

// CapacityFunc extracts an edge's capacity. Capacities must be
// non-negative; a negative capacity is reported as an EdgeError.
type CapacityFunc func(e graph.Edge) float64

// Options configures every algorithm in this package.
type Options struct {
	ctx     context.Context
	epsilon float64
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns production-safe defaults: a background context
// and an epsilon of 1e-9 below which a residual capacity is treated as
// exhausted.
func DefaultOptions() Options {
	return Options{ctx: context.Background(), epsilon: 1e-9}
}

// WithContext sets the cancellation context checked between augmentations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}

// WithEpsilon sets the zero-capacity threshold.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.epsilon = eps }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result is the outcome of a max-flow computation: the flow value and the
// flow carried on every edge of the input graph, indexed by edge id so a
// caller can reconstruct per-edge residual capacity as cap−flow.
type Result struct {
	MaxFlow float64
	Flow    map[graph.EdgeID]float64
}

// residualArc is one direction-tagged traversal step out of a node in the
// residual network: a forward arc draws residual capacity from cap−flow
// on its edge, a backward arc (the reverse of some other edge) draws it
// from flow already pushed, letting augmentation cancel an earlier push.
type residualArc struct {
	edge     graph.EdgeID
	to       graph.NodeID
	forward  bool
	capacity float64
}

// buildResidualIndex indexes, for every node, the residual arcs leaving it:
// one forward arc per outgoing edge and one backward arc per incoming
// edge. Returns an error if any edge carries a negative capacity.
func buildResidualIndex(g Graph, capacity CapacityFunc) (map[graph.NodeID][]residualArc, error) {
	adj := make(map[graph.NodeID][]residualArc)
	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		id := n.ID()
		out := g.EdgesDirected(id, graph.Outgoing)
		for out.Next() {
			e := out.Edge()
			c := capacity(e)
			if c < 0 {
				return nil, EdgeError{From: e.From(), To: e.To(), Cap: c}
			}
			adj[e.From()] = append(adj[e.From()], residualArc{edge: e.ID(), to: e.To(), forward: true, capacity: c})
			adj[e.To()] = append(adj[e.To()], residualArc{edge: e.ID(), to: e.From(), forward: false})
		}
	}
	return adj, nil
}

func residualCapacity(arc residualArc, flow map[graph.EdgeID]float64) float64 {
	if arc.forward {
		return arc.capacity - flow[arc.edge]
	}
	return flow[arc.edge]
}

func pushFlow(arc residualArc, flow map[graph.EdgeID]float64, amount float64) {
	if arc.forward {
		flow[arc.edge] += amount
	} else {
		flow[arc.edge] -= amount
	}
}

func hasNode(g Graph, id graph.NodeID) bool {
	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		if n.ID() == id {
			return true
		}
	}
	return false
}
