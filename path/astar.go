package path

import (
	"container/heap"

	"github.com/vertigraph/vertigraph/graph"
)

// Heuristic estimates the remaining cost from id to the goal. An admissible
// heuristic (never overestimating the true cost) guarantees optimality.
type Heuristic[N Number] func(id graph.NodeID) N

type astarItem[N Number] struct {
	id      graph.NodeID
	f, h, g N
}

type astarHeap[N Number] []*astarItem[N]

func (h astarHeap[N]) Len() int { return len(h) }

// Less orders by (f, h, g) lexicographically: ties on the full estimate
// favor the entry closer to the goal by heuristic, then the cheaper path so
// far, so the search prefers exploring toward the goal under a tie.
func (h astarHeap[N]) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].h != h[j].h {
		return h[i].h < h[j].h
	}
	return h[i].g < h[j].g
}
func (h astarHeap[N]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *astarHeap[N]) Push(x interface{}) { *h = append(*h, x.(*astarItem[N])) }
func (h *astarHeap[N]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// GoalPredicate reports whether id is an acceptable destination for a
// search; AStar stops at the first one it pops off the open set, so it
// supports searching toward whichever of several goals is cheapest to
// reach rather than a single fixed target.
type GoalPredicate func(id graph.NodeID) bool

// AStar finds the shortest path from source to any node accepted by isGoal
// in g, using heuristic to prioritize expansion. Requires non-negative edge
// weights. A node may be re-expanded if a strictly smaller g is later
// discovered for it, so the "closed" best-g map is overwritten rather than
// locking a node out forever. Grounded on petgraph's astar.rs, whose goal
// parameter is likewise a predicate rather than a single node.
func AStar[N Number](g Graph, source graph.NodeID, isGoal GoalPredicate, weight WeightFunc[N], heuristic Heuristic[N], opts ...Option[N]) (*Result[N], bool, error) {
	o := defaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	var zero N
	bestG := map[graph.NodeID]N{source: zero}
	var prev map[graph.NodeID]graph.NodeID
	if o.predecessors == Record {
		prev = make(map[graph.NodeID]graph.NodeID)
	}

	h := &astarHeap[N]{}
	heap.Init(h)
	heap.Push(h, &astarItem[N]{id: source, f: heuristic(source), h: heuristic(source), g: zero})

	for h.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return nil, false, o.ctx.Err()
		default:
		}

		cur := heap.Pop(h).(*astarItem[N])
		if g, ok := bestG[cur.id]; ok && cur.g > g {
			// Stale entry: a strictly smaller g has since been recorded.
			continue
		}
		if isGoal(cur.id) {
			res := &Result[N]{Dist: map[graph.NodeID]N{cur.id: cur.g}, Prev: prev}
			return res, true, nil
		}

		edges := g.EdgesDirected(cur.id, graph.Outgoing)
		for edges.Next() {
			e := edges.Edge()
			to := e.To()
			w := weight(e)
			if w < zero {
				return nil, false, ErrNegativeWeight
			}
			ng := cur.g + w
			if existing, ok := bestG[to]; !ok || ng < existing {
				bestG[to] = ng
				if prev != nil {
					prev[to] = cur.id
				}
				nh := heuristic(to)
				heap.Push(h, &astarItem[N]{id: to, f: ng + nh, h: nh, g: ng})
			}
		}
	}

	return nil, false, nil
}

// AStarTo is AStar restricted to a single target, for the common case where
// GoalPredicate's multi-goal support isn't needed.
func AStarTo[N Number](g Graph, source, target graph.NodeID, weight WeightFunc[N], heuristic Heuristic[N], opts ...Option[N]) (*Result[N], bool, error) {
	return AStar(g, source, func(id graph.NodeID) bool { return id == target }, weight, heuristic, opts...)
}
