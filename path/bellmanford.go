package path

import "github.com/vertigraph/vertigraph/graph"

// BellmanFord computes shortest distances from source to every reachable
// node in g, tolerating negative edge weights. Relaxes every edge up to
// |V|-1 times, then performs one more pass to detect a negative cycle
// reachable from source; if found, returns ErrNegativeCycle.
func BellmanFord[N Number](g Graph, source graph.NodeID, weight WeightFunc[N], opts ...Option[N]) (*Result[N], error) {
	o := defaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := graph.NodesOf(g.Nodes())
	var zero N
	res := &Result[N]{Dist: map[graph.NodeID]N{source: zero}}
	if o.predecessors == Record {
		res.Prev = make(map[graph.NodeID]graph.NodeID)
	}

	type edgeRecord struct {
		from, to graph.NodeID
		w        N
	}
	edges := make([]edgeRecord, 0, len(nodes)*2)
	for _, n := range nodes {
		it := g.EdgesDirected(n.ID(), graph.Outgoing)
		for it.Next() {
			e := it.Edge()
			edges = append(edges, edgeRecord{from: e.From(), to: e.To(), w: weight(e)})
		}
	}

	for i := 0; i < len(nodes)-1; i++ {
		select {
		case <-o.ctx.Done():
			return res, o.ctx.Err()
		default:
		}
		changed := false
		for _, e := range edges {
			du, ok := res.Dist[e.from]
			if !ok {
				continue
			}
			nd := du + e.w
			if dv, ok := res.Dist[e.to]; !ok || nd < dv {
				res.Dist[e.to] = nd
				if res.Prev != nil {
					res.Prev[e.to] = e.from
				}
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, e := range edges {
		du, ok := res.Dist[e.from]
		if !ok {
			continue
		}
		if dv, ok := res.Dist[e.to]; !ok || du+e.w < dv {
			return res, ErrNegativeCycle
		}
	}

	return res, nil
}
