package traverse

import (
	"context"
	"fmt"

	"github.com/vertigraph/vertigraph/gerr"
	"github.com/vertigraph/vertigraph/graph"
)

const (
	white = iota
	gray
	black
)

// TopoGraph is the capability conjunction topological sort needs.
type TopoGraph interface {
	graph.NodeIdentifiers
	graph.NeighborsDirected
}

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
	ws  *TopoWorkspace
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithTopoContext sets a context for cancellation.
func WithTopoContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithTopoWorkspace supplies a pre-allocated TopoWorkspace so a caller doing
// repeated sorts (e.g. re-sorting after incremental edge changes) can reuse
// its visit-state map and DFS stack instead of allocating fresh ones every
// call.
func WithTopoWorkspace(ws *TopoWorkspace) TopoOption {
	return func(o *topoOptions) {
		if ws != nil {
			o.ws = ws
		}
	}
}

// topoFrame is one level of the explicit DFS stack TopologicalSort walks: the
// node it was pushed for and a cursor over that node's successors.
type topoFrame struct {
	node graph.NodeID
	it   graph.Nodes
}

// TopoWorkspace holds the visit-state map, explicit DFS stack, and result
// buffer a topological sort needs, kept as reusable scratch state: Reset
// clears it for another call without reallocating the backing map or
// slices. Pass one via WithTopoWorkspace to reuse that state across calls;
// each call still allocates its node list and neighbor iterators.
type TopoWorkspace struct {
	state  map[graph.NodeID]int
	order  []graph.NodeID
	frames []topoFrame
}

// NewTopoWorkspace allocates a workspace ready for repeated TopologicalSort calls.
func NewTopoWorkspace() *TopoWorkspace {
	return &TopoWorkspace{state: make(map[graph.NodeID]int)}
}

// Reset clears the workspace so it can drive a fresh topological sort.
func (w *TopoWorkspace) Reset() {
	if w.state == nil {
		w.state = make(map[graph.NodeID]int)
	}
	for k := range w.state {
		delete(w.state, k)
	}
	w.order = w.order[:0]
	w.frames = w.frames[:0]
}

// TopologicalSort computes a linear order of every node in g such that for
// every edge u->v, u precedes v. Returns a *gerr.Cycle-wrapped error if g is
// not acyclic. Walks an explicit stack of per-node successor cursors rather
// than recursing, so stack depth is bounded by available memory rather than
// the Go call stack.
func TopologicalSort(g TopoGraph, opts ...TopoOption) ([]graph.NodeID, error) {
	o := defaultTopoOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ws := o.ws
	if ws == nil {
		ws = NewTopoWorkspace()
	}
	ws.Reset()

	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		if ws.state[n.ID()] == white {
			if err := topoVisit(g, ws, n.ID(), o.ctx); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(ws.order)-1; i < j; i, j = i+1, j-1 {
		ws.order[i], ws.order[j] = ws.order[j], ws.order[i]
	}

	return ws.order, nil
}

func topoVisit(g TopoGraph, ws *TopoWorkspace, start graph.NodeID, ctx context.Context) error {
	ws.state[start] = gray
	ws.frames = append(ws.frames, topoFrame{node: start, it: g.NeighborsDirected(start, graph.Outgoing)})

	for len(ws.frames) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top := &ws.frames[len(ws.frames)-1]
		descended := false
		for top.it.Next() {
			nb := top.it.Node().ID()
			switch ws.state[nb] {
			case gray:
				return fmt.Errorf("traverse: TopologicalSort: %w", gerr.NewCycle(nb))
			case black:
				continue
			default:
				ws.state[nb] = gray
				ws.frames = append(ws.frames, topoFrame{node: nb, it: g.NeighborsDirected(nb, graph.Outgoing)})
				descended = true
			}
			break
		}
		if descended {
			continue
		}

		finished := ws.frames[len(ws.frames)-1]
		ws.frames = ws.frames[:len(ws.frames)-1]
		ws.state[finished.node] = black
		ws.order = append(ws.order, finished.node)
	}
	return nil
}

// GroupedTopoWorkspace holds the in-degree map and frontier buffers
// GroupedTopologicalSort needs, kept as reusable scratch state so repeated
// calls over the same (or same-sized) graph avoid reallocating them.
type GroupedTopoWorkspace struct {
	indeg    map[graph.NodeID]int
	frontier []graph.NodeID
	next     []graph.NodeID
}

// NewGroupedTopoWorkspace allocates a workspace ready for repeated
// GroupedTopologicalSort calls.
func NewGroupedTopoWorkspace() *GroupedTopoWorkspace {
	return &GroupedTopoWorkspace{indeg: make(map[graph.NodeID]int)}
}

// Reset clears the workspace so it can drive a fresh grouped sort.
func (w *GroupedTopoWorkspace) Reset() {
	if w.indeg == nil {
		w.indeg = make(map[graph.NodeID]int)
	}
	for k := range w.indeg {
		delete(w.indeg, k)
	}
	w.frontier = w.frontier[:0]
	w.next = w.next[:0]
}

// GroupedTopologicalSort partitions nodes into layers: layer 0 holds every
// node with in-degree 0, layer k+1 holds every node whose predecessors all
// lie in layers <= k. Nodes within a layer have no edge between them, so
// they may be processed concurrently. Equivalent to Kahn's algorithm with
// layer boundaries recorded instead of discarded.
//
// An optional *GroupedTopoWorkspace may be passed so the in-degree map and
// frontier buffers are reused across calls instead of allocated fresh each
// time; the returned layers themselves are always freshly allocated, since
// their count and sizes vary with the result.
func GroupedTopologicalSort(g interface {
	graph.NodeIdentifiers
	graph.NeighborsDirected
}, ws ...*GroupedTopoWorkspace) ([][]graph.NodeID, error) {
	var w *GroupedTopoWorkspace
	if len(ws) > 0 && ws[0] != nil {
		w = ws[0]
	} else {
		w = NewGroupedTopoWorkspace()
	}
	w.Reset()

	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		w.indeg[n.ID()] = 0
	}
	for _, n := range nodes {
		succ := g.NeighborsDirected(n.ID(), graph.Outgoing)
		for succ.Next() {
			w.indeg[succ.Node().ID()]++
		}
	}

	var layers [][]graph.NodeID
	remaining := len(nodes)
	for id, d := range w.indeg {
		if d == 0 {
			w.frontier = append(w.frontier, id)
		}
	}

	for len(w.frontier) > 0 {
		layers = append(layers, append([]graph.NodeID(nil), w.frontier...))
		remaining -= len(w.frontier)
		w.next = w.next[:0]
		for _, id := range w.frontier {
			succ := g.NeighborsDirected(id, graph.Outgoing)
			for succ.Next() {
				nb := succ.Node().ID()
				w.indeg[nb]--
				if w.indeg[nb] == 0 {
					w.next = append(w.next, nb)
				}
			}
		}
		w.frontier, w.next = w.next, w.frontier
	}

	if remaining != 0 {
		// Every unplaced node keeps an unplaced predecessor, so stepping
		// back through them len(nodes) times ends on a cycle.
		var cur graph.NodeID
		for id, d := range w.indeg {
			if d > 0 {
				cur = id
				break
			}
		}
		for i := 0; i < len(nodes); i++ {
			preds := g.NeighborsDirected(cur, graph.Incoming)
			for preds.Next() {
				if p := preds.Node().ID(); w.indeg[p] > 0 {
					cur = p
					break
				}
			}
		}
		return nil, gerr.NewCycle(cur)
	}

	return layers, nil
}
