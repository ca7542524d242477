package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

// ErrStartNodeNotFound names a start node that is not part of the graph
// being walked. No function in this package returns it.
var ErrStartNodeNotFound = errors.New("traverse: start node not found")

// BFSOption configures a BFS walk via functional arguments.
type BFSOption func(*bfsOptions)

type bfsOptions struct {
	ctx            context.Context
	onEnqueue      func(id graph.NodeID, depth int)
	onVisit        func(id graph.NodeID, depth int) error
	maxDepth       int
	filterNeighbor func(cur, next graph.NodeID) bool
	dir            graph.Direction
}

func defaultBFSOptions() bfsOptions {
	return bfsOptions{
		ctx:            context.Background(),
		onEnqueue:      func(graph.NodeID, int) {},
		onVisit:        func(graph.NodeID, int) error { return nil },
		maxDepth:       0,
		filterNeighbor: func(graph.NodeID, graph.NodeID) bool { return true },
		dir:            graph.Outgoing,
	}
}

// WithBFSContext sets a context for cancellation.
func WithBFSContext(ctx context.Context) BFSOption {
	return func(o *bfsOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithBFSOnEnqueue registers a callback invoked when a node is first discovered.
func WithBFSOnEnqueue(fn func(id graph.NodeID, depth int)) BFSOption {
	return func(o *bfsOptions) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithBFSOnVisit registers a callback invoked when a node is dequeued;
// returning an error aborts the walk and propagates it.
func WithBFSOnVisit(fn func(id graph.NodeID, depth int) error) BFSOption {
	return func(o *bfsOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithBFSMaxDepth stops exploring beyond the given depth. 0 disables the limit.
func WithBFSMaxDepth(d int) BFSOption {
	return func(o *bfsOptions) { o.maxDepth = d }
}

// WithBFSFilterNeighbor skips an edge cur->next when fn returns false.
func WithBFSFilterNeighbor(fn func(cur, next graph.NodeID) bool) BFSOption {
	return func(o *bfsOptions) {
		if fn != nil {
			o.filterNeighbor = fn
		}
	}
}

// WithBFSDirection selects Outgoing (default) or Incoming edges on a
// directed graph implementing graph.NeighborsDirected.
func WithBFSDirection(dir graph.Direction) BFSOption {
	return func(o *bfsOptions) { o.dir = dir }
}

// Result holds the outcome of a BFS walk.
type Result struct {
	// Order lists nodes in the order they were visited (non-decreasing layer).
	Order []graph.NodeID
	// Depth maps a node to its BFS layer (distance in edges) from the start.
	Depth map[graph.NodeID]int
	// Parent maps a node to its predecessor in the BFS tree.
	Parent map[graph.NodeID]graph.NodeID
}

// PathTo reconstructs the start-to-dest path by walking Parent backwards.
func (r *Result) PathTo(dest graph.NodeID) ([]graph.NodeID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traverse: no path to node %d", dest)
	}
	path := []graph.NodeID{dest}
	cur := dest
	for {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Graph is the minimal capability conjunction BFS needs: undirected (or
// default-direction) neighbor iteration plus visit-map construction.
type Graph interface {
	graph.Neighbors
	graph.Visitable
}

// DirectedGraph is the capability conjunction BFSDirected needs.
type DirectedGraph interface {
	graph.NeighborsDirected
	graph.Visitable
}

// BFS walks g breadth-first starting at start. A node is enqueued when
// first discovered, not when popped, so no node is ever enqueued twice.
func BFS(g Graph, start graph.NodeID, opts ...BFSOption) (*Result, error) {
	return bfs(g, g.Neighbors, start, opts...)
}

// BFSDirected is BFS restricted to one edge direction of a directed graph;
// pass WithBFSDirection to select Incoming instead of the Outgoing default.
func BFSDirected(g DirectedGraph, start graph.NodeID, opts ...BFSOption) (*Result, error) {
	o := defaultBFSOptions()
	for _, opt := range opts {
		opt(&o)
	}
	neighbors := func(id graph.NodeID) graph.Nodes { return g.NeighborsDirected(id, o.dir) }
	return bfs(g, neighbors, start, opts...)
}

func bfs(g graph.Visitable, neighbors func(graph.NodeID) graph.Nodes, start graph.NodeID, opts ...BFSOption) (*Result, error) {
	o := defaultBFSOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := g.NewVisitMap()
	type item struct {
		id     graph.NodeID
		depth  int
		parent graph.NodeID
		hasP   bool
	}
	queue := make([]item, 0, 16)
	res := &Result{
		Order:  make([]graph.NodeID, 0, 16),
		Depth:  make(map[graph.NodeID]int),
		Parent: make(map[graph.NodeID]graph.NodeID),
	}

	enqueue := func(id graph.NodeID, depth int, parent graph.NodeID, hasParent bool) {
		visited.Visit(id)
		res.Depth[id] = depth
		if hasParent {
			res.Parent[id] = parent
		}
		o.onEnqueue(id, depth)
		queue = append(queue, item{id: id, depth: depth, parent: parent, hasP: hasParent})
	}

	enqueue(start, 0, 0, false)

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return res, o.ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, cur.id)
		if err := o.onVisit(cur.id, cur.depth); err != nil {
			return res, fmt.Errorf("traverse: OnVisit error at node %d: %w", cur.id, err)
		}

		nextDepth := cur.depth + 1
		if o.maxDepth > 0 && nextDepth > o.maxDepth {
			continue
		}

		nbrs := neighbors(cur.id)
		for nbrs.Next() {
			nb := nbrs.Node().ID()
			if !o.filterNeighbor(cur.id, nb) {
				continue
			}
			if !visited.IsVisited(nb) {
				enqueue(nb, nextDepth, cur.id, true)
			}
		}
	}

	return res, nil
}
