package path

import (
	"container/heap"

	"github.com/vertigraph/vertigraph/graph"
)

// KShortestPathLength computes, for every node reachable from source, the
// lengths of its k shortest walks (walks may revisit nodes and edges; this
// is not k simple paths). A node's entry in the result holds up to k
// distances in non-decreasing order.
//
// Uses petgraph's per-node pop-counter semantics: a node is popped off the
// heap and relaxed at most k times total; the i-th pop records the i-th
// shortest walk length to that node. Once a node has been popped k times,
// further (necessarily longer) entries for it are discarded unrelaxed,
// which is what bounds the search over graphs with cycles.
func KShortestPathLength[N Number](g Graph, source graph.NodeID, k int, weight WeightFunc[N]) map[graph.NodeID][]N {
	if k < 1 {
		k = 1
	}

	popCount := make(map[graph.NodeID]int)
	result := make(map[graph.NodeID][]N)

	h := &costHeap[N]{}
	heap.Init(h)
	var zero N
	heap.Push(h, &item[N]{id: source, dist: zero})

	for h.Len() > 0 {
		cur := heap.Pop(h).(*item[N])
		if popCount[cur.id] >= k {
			continue
		}
		popCount[cur.id]++
		result[cur.id] = append(result[cur.id], cur.dist)

		edges := g.EdgesDirected(cur.id, graph.Outgoing)
		for edges.Next() {
			e := edges.Edge()
			to := e.To()
			w := weight(e)
			nd := cur.dist + w
			heap.Push(h, &item[N]{id: to, dist: nd})
		}
	}

	return result
}
