package traverse

import (
	"context"
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

// DFSOption configures a DFS walk via functional arguments.
type DFSOption func(*dfsOptions)

type dfsOptions struct {
	ctx            context.Context
	onVisit        func(id graph.NodeID, depth int) error
	onExit         func(id graph.NodeID, depth int) error
	maxDepth       int
	filterNeighbor func(cur, next graph.NodeID) bool
	full           bool
	dir            graph.Direction
}

func defaultDFSOptions() dfsOptions {
	return dfsOptions{
		ctx:            context.Background(),
		onVisit:        func(graph.NodeID, int) error { return nil },
		onExit:         func(graph.NodeID, int) error { return nil },
		maxDepth:       -1,
		filterNeighbor: func(graph.NodeID, graph.NodeID) bool { return true },
		full:           false,
		dir:            graph.Outgoing,
	}
}

// WithDFSContext sets a context for cancellation.
func WithDFSContext(ctx context.Context) DFSOption {
	return func(o *dfsOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithDFSOnVisit registers a pre-order hook; an error aborts the walk.
func WithDFSOnVisit(fn func(id graph.NodeID, depth int) error) DFSOption {
	return func(o *dfsOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithDFSOnExit registers a post-order hook, called after a node's
// descendants have all been explored; an error aborts the walk.
func WithDFSOnExit(fn func(id graph.NodeID, depth int) error) DFSOption {
	return func(o *dfsOptions) {
		if fn != nil {
			o.onExit = fn
		}
	}
}

// WithDFSMaxDepth limits the walk to the given depth. A negative value
// (the default) disables the limit.
func WithDFSMaxDepth(d int) DFSOption {
	return func(o *dfsOptions) { o.maxDepth = d }
}

// WithDFSFilterNeighbor skips an edge cur->next when fn returns false.
func WithDFSFilterNeighbor(fn func(cur, next graph.NodeID) bool) DFSOption {
	return func(o *dfsOptions) {
		if fn != nil {
			o.filterNeighbor = fn
		}
	}
}

// WithDFSFullTraversal restarts the walk from every undiscovered node,
// covering every component of a disconnected graph.
func WithDFSFullTraversal() DFSOption {
	return func(o *dfsOptions) { o.full = true }
}

// WithDFSDirection selects Outgoing (default) or Incoming edges.
func WithDFSDirection(dir graph.Direction) DFSOption {
	return func(o *dfsOptions) { o.dir = dir }
}

// DFSResult captures the outcome of a depth-first walk.
type DFSResult struct {
	// Order records nodes in post-order (finishing order).
	Order  []graph.NodeID
	Depth  map[graph.NodeID]int
	Parent map[graph.NodeID]graph.NodeID
}

// dfsFrame is one level of the explicit DFS stack: the node it was pushed
// for, its depth, and its own cursor over that node's neighbors. Descending
// to a successor pushes a new frame instead of recursing, so DFSWalker's
// stack depth is bounded by available memory rather than the Go call stack.
type dfsFrame struct {
	node  graph.NodeID
	depth int
	it    graph.Nodes
}

// DFSWalker holds the explicit stack, visit map, and result buffers for an
// iterative depth-first walk, kept as reusable scratch state: Reset starts
// a fresh walk over the same graph, clearing the visit map and stack in
// place (each walk gets a new result), and MoveTo seeds
// (or reseeds) the walk at a given node, picking up where a previous MoveTo
// left off if that node is still undiscovered — the mechanism
// WithDFSFullTraversal drives to reach every component of a disconnected
// graph from one shared DFSWalker.
type DFSWalker struct {
	g         graph.Visitable
	neighbors func(graph.NodeID) graph.Nodes
	opts      dfsOptions
	visited   graph.VisitMap
	frames    []dfsFrame
	res       *DFSResult
}

// NewDFSWalker prepares DFS scratch state for g, ready to call MoveTo.
func NewDFSWalker(g graph.Visitable, neighbors func(graph.NodeID) graph.Nodes, opts ...DFSOption) *DFSWalker {
	o := defaultDFSOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &DFSWalker{g: g, neighbors: neighbors, opts: o}
	w.Reset()
	return w
}

// Reset clears the visit map and stack in place and starts a new result,
// so the same DFSWalker can drive a fresh walk over its graph.
func (w *DFSWalker) Reset() {
	if w.visited == nil {
		w.visited = w.g.NewVisitMap()
	} else {
		w.visited.Clear()
	}
	w.frames = w.frames[:0]
	w.res = &DFSResult{
		Order:  make([]graph.NodeID, 0, 16),
		Depth:  make(map[graph.NodeID]int),
		Parent: make(map[graph.NodeID]graph.NodeID),
	}
}

// Result returns the walk's accumulated outcome so far.
func (w *DFSWalker) Result() *DFSResult { return w.res }

// MoveTo walks every node reachable from start that Reset (or a prior
// MoveTo) has not already discovered. Calling it again with a node from a
// different component extends the same Order/Depth/Parent result rather
// than starting over.
func (w *DFSWalker) MoveTo(start graph.NodeID) error {
	if w.visited.IsVisited(start) {
		return nil
	}
	if err := w.push(start, 0); err != nil {
		return err
	}

	for len(w.frames) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		top := &w.frames[len(w.frames)-1]
		descended := false
		for top.it.Next() {
			nb := top.it.Node().ID()
			if !w.opts.filterNeighbor(top.node, nb) {
				continue
			}
			if w.visited.IsVisited(nb) {
				continue
			}
			w.res.Parent[nb] = top.node
			if w.opts.maxDepth >= 0 && top.depth+1 > w.opts.maxDepth {
				continue
			}
			if err := w.push(nb, top.depth+1); err != nil {
				return err
			}
			descended = true
			break
		}
		if descended {
			continue
		}

		finished := w.frames[len(w.frames)-1]
		w.frames = w.frames[:len(w.frames)-1]
		if err := w.opts.onExit(finished.node, finished.depth); err != nil {
			return fmt.Errorf("traverse: OnExit at node %d: %w", finished.node, err)
		}
		w.res.Order = append(w.res.Order, finished.node)
	}
	return nil
}

func (w *DFSWalker) push(id graph.NodeID, depth int) error {
	w.visited.Visit(id)
	w.res.Depth[id] = depth
	if err := w.opts.onVisit(id, depth); err != nil {
		return fmt.Errorf("traverse: OnVisit at node %d: %w", id, err)
	}
	w.frames = append(w.frames, dfsFrame{node: id, depth: depth, it: w.neighbors(id)})
	return nil
}

// DFS walks g depth-first from start, iteratively via an explicit stack.
// Pass WithDFSFullTraversal to also cover components start cannot reach.
func DFS(g Graph, start graph.NodeID, opts ...DFSOption) (*DFSResult, error) {
	return dfs(g, g.Neighbors, start, opts...)
}

// DFSDirected is DFS restricted to one edge direction of a directed graph.
func DFSDirected(g DirectedGraph, start graph.NodeID, opts ...DFSOption) (*DFSResult, error) {
	o := defaultDFSOptions()
	for _, opt := range opts {
		opt(&o)
	}
	neighbors := func(id graph.NodeID) graph.Nodes { return g.NeighborsDirected(id, o.dir) }
	return dfs(g, neighbors, start, opts...)
}

func dfs(g graph.Visitable, neighbors func(graph.NodeID) graph.Nodes, start graph.NodeID, opts ...DFSOption) (*DFSResult, error) {
	w := NewDFSWalker(g, neighbors, opts...)

	if err := w.MoveTo(start); err != nil {
		return w.Result(), err
	}

	if w.opts.full {
		if all, ok := g.(graph.NodeIdentifiers); ok {
			for _, n := range graph.NodesOf(all.Nodes()) {
				if err := w.MoveTo(n.ID()); err != nil {
					return w.Result(), err
				}
			}
		}
	}

	return w.Result(), nil
}
