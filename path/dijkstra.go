package path

import (
	"container/heap"

	"github.com/vertigraph/vertigraph/graph"
)

// Dijkstra computes shortest distances from source to every reachable node
// in g. Edge weights must be non-negative; a negative weight encountered
// during relaxation returns ErrNegativeWeight. Uses a lazy-decrease-key
// min-heap: a fresher, cheaper entry for a node is pushed rather than
// mutating the heap in place, and stale entries are skipped on pop once the
// node has already been finalized. On an undirected graph an edge is
// followed from whichever endpoint is being expanded.
func Dijkstra[N Number](g Graph, source graph.NodeID, weight WeightFunc[N], opts ...Option[N]) (*Result[N], error) {
	o := defaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result[N]{Dist: make(map[graph.NodeID]N)}
	if o.predecessors == Record {
		res.Prev = make(map[graph.NodeID]graph.NodeID)
	}

	var zero N
	visited := make(map[graph.NodeID]bool)
	h := &costHeap[N]{}
	heap.Init(h)
	res.Dist[source] = zero
	heap.Push(h, &item[N]{id: source, dist: zero})

	for h.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return res, o.ctx.Err()
		default:
		}

		cur := heap.Pop(h).(*item[N])
		// Pop-before-relax: the node is finalized the instant it is popped,
		// before its successors are examined, matching petgraph's
		// DijkstraIter semantics (a caller walking the iterator form can
		// stop the moment it pops its target).
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true

		edges := g.EdgesDirected(cur.id, graph.Outgoing)
		for edges.Next() {
			e := edges.Edge()
			to := e.To()
			if to == cur.id {
				to = e.From()
			}
			if visited[to] {
				continue
			}
			w := weight(e)
			if w < zero {
				return res, ErrNegativeWeight
			}
			nd := cur.dist + w
			existing, reached := res.Dist[to]
			if !reached || nd < existing {
				res.Dist[to] = nd
				if res.Prev != nil {
					res.Prev[to] = cur.id
				}
				heap.Push(h, &item[N]{id: to, dist: nd})
			}
		}
	}

	return res, nil
}

// DijkstraTo runs Dijkstra but returns as soon as target is popped off the
// heap (finalized), without finishing the rest of the graph. Returns
// (dist, true) if target is reachable.
func DijkstraTo[N Number](g Graph, source, target graph.NodeID, weight WeightFunc[N], opts ...Option[N]) (N, bool, error) {
	o := defaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	var zero N
	dist := make(map[graph.NodeID]N)
	visited := make(map[graph.NodeID]bool)
	h := &costHeap[N]{}
	heap.Init(h)
	dist[source] = zero
	heap.Push(h, &item[N]{id: source, dist: zero})

	for h.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return zero, false, o.ctx.Err()
		default:
		}

		cur := heap.Pop(h).(*item[N])
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true
		if cur.id == target {
			return cur.dist, true, nil
		}

		edges := g.EdgesDirected(cur.id, graph.Outgoing)
		for edges.Next() {
			e := edges.Edge()
			to := e.To()
			if to == cur.id {
				to = e.From()
			}
			if visited[to] {
				continue
			}
			w := weight(e)
			if w < zero {
				return zero, false, ErrNegativeWeight
			}
			nd := cur.dist + w
			existing, reached := dist[to]
			if !reached || nd < existing {
				dist[to] = nd
				heap.Push(h, &item[N]{id: to, dist: nd})
			}
		}
	}

	return zero, false, nil
}
