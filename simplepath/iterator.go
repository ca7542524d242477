package simplepath

import "github.com/vertigraph/vertigraph/graph"

// frame is one level of the explicit-stack DFS: the node occupying that
// stack position, its precomputed neighbor list, the index of the next
// neighbor to try, and whether the node's own yield check has run yet.
type frame struct {
	node    graph.NodeID
	nbrs    []graph.NodeID
	idx     int
	entered bool
}

// Iterator yields every simple path from source to target within the
// configured intermediate-length bounds, one per call to Next.
type Iterator struct {
	g        Graph
	target   graph.NodeID
	opts     Options
	stack    []frame
	visited  map[graph.NodeID]bool
	exhausted bool
}

// New builds an Iterator walking g from source to target.
func New(g Graph, source, target graph.NodeID, opts ...Option) *Iterator {
	it := &Iterator{
		g:       g,
		target:  target,
		opts:    resolveOptions(opts),
		visited: map[graph.NodeID]bool{source: true},
	}
	it.stack = []frame{it.pushFrame(source)}
	return it
}

func (it *Iterator) pushFrame(node graph.NodeID) frame {
	nbrs := graph.NodesOf(it.g.Neighbors(node))
	ids := make([]graph.NodeID, len(nbrs))
	for i, n := range nbrs {
		ids[i] = n.ID()
	}
	return frame{node: node, nbrs: ids}
}

// Next advances the search to the next qualifying path, returning false
// once every simple path has been produced.
func (it *Iterator) Next() bool {
	if it.exhausted {
		return false
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		if !top.entered {
			top.entered = true
			if top.node == it.target {
				top.idx = len(top.nbrs) // target never expands further
				intermediate := len(it.stack) - 2
				if intermediate >= it.opts.minNodes && (it.opts.maxNodes == NoLimit || intermediate <= it.opts.maxNodes) {
					return true
				}
			}
		}

		advanced := false
		for top.idx < len(top.nbrs) {
			nbr := top.nbrs[top.idx]
			top.idx++
			if it.visited[nbr] {
				continue
			}
			if nbr != it.target {
				prefixIntermediate := len(it.stack) // this node, once pushed, becomes an intermediate node
				if it.opts.maxNodes != NoLimit && prefixIntermediate > it.opts.maxNodes {
					continue
				}
			}
			it.visited[nbr] = true
			it.stack = append(it.stack, it.pushFrame(nbr))
			advanced = true
			break
		}
		if advanced {
			continue
		}

		delete(it.visited, top.node)
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.exhausted = true
	return false
}

// Path returns the path found by the most recent Next call that
// returned true, from source to target inclusive.
func (it *Iterator) Path() []graph.NodeID {
	path := make([]graph.NodeID, len(it.stack))
	for i, f := range it.stack {
		path[i] = f.node
	}
	return path
}
