package path

import (
	"container/heap"

	"github.com/vertigraph/vertigraph/graph"
)

// Johnson computes all-pairs shortest distances in g, tolerating negative
// edge weights (but not negative cycles), by reweighting edges with
// Bellman-Ford potentials and then running Dijkstra from every node. This
// is the sparse-graph-friendly alternative to FloydWarshall: O(V*(V+E)logV)
// instead of O(V^3).
//
// The Bellman-Ford potential pass is equivalent to adding a virtual source
// with a zero-weight edge to every node and relaxing from it, but is
// implemented by simply seeding every node's initial distance at zero
// instead of allocating a graph with an extra node.
func Johnson(g CompactGraph, weight func(e graph.Edge) float64) (map[graph.NodeID]map[graph.NodeID]float64, error) {
	nodes := graph.NodesOf(g.Nodes())

	h := make(map[graph.NodeID]float64, len(nodes))
	for _, node := range nodes {
		h[node.ID()] = 0
	}

	type edgeRecord struct {
		from, to graph.NodeID
		w        float64
	}
	var edges []edgeRecord
	for _, node := range nodes {
		it := g.EdgesDirected(node.ID(), graph.Outgoing)
		for it.Next() {
			e := it.Edge()
			edges = append(edges, edgeRecord{from: e.From(), to: e.To(), w: weight(e)})
		}
	}

	for i := 0; i < len(nodes); i++ {
		changed := false
		for _, e := range edges {
			if h[e.from]+e.w < h[e.to] {
				h[e.to] = h[e.from] + e.w
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	for _, e := range edges {
		if h[e.from]+e.w < h[e.to] {
			return nil, ErrNegativeCycle
		}
	}

	out := make(map[graph.NodeID]map[graph.NodeID]float64, len(nodes))
	for _, src := range nodes {
		dp := dijkstraReweighted(g, src.ID(), weight, h)
		row := make(map[graph.NodeID]float64, len(dp))
		for v, d := range dp {
			row[v] = d - h[src.ID()] + h[v]
		}
		out[src.ID()] = row
	}

	return out, nil
}

func dijkstraReweighted(g CompactGraph, source graph.NodeID, weight func(e graph.Edge) float64, h map[graph.NodeID]float64) map[graph.NodeID]float64 {
	dist := map[graph.NodeID]float64{source: 0}
	visited := make(map[graph.NodeID]bool)
	heapQ := &costHeap[float64]{}
	heap.Init(heapQ)
	heap.Push(heapQ, &item[float64]{id: source, dist: 0})

	for heapQ.Len() > 0 {
		cur := heap.Pop(heapQ).(*item[float64])
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true

		edges := g.EdgesDirected(cur.id, graph.Outgoing)
		for edges.Next() {
			e := edges.Edge()
			to := e.To()
			if visited[to] {
				continue
			}
			w := weight(e) + h[e.From()] - h[to]
			if w < 0 {
				w = 0 // numerical guard; reweighting already guarantees w >= 0
			}
			nd := cur.dist + w
			if existing, ok := dist[to]; !ok || nd < existing {
				dist[to] = nd
				heap.Push(heapQ, &item[float64]{id: to, dist: nd})
			}
		}
	}

	return dist
}
