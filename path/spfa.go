package path

import "github.com/vertigraph/vertigraph/graph"

// SPFA (Shortest Path Faster Algorithm) is a queue-based Bellman-Ford
// variant: only nodes whose distance just improved are re-examined, instead
// of sweeping every edge each round. Negative-cycle detection does not rely
// on a bare per-node relaxation counter (which can false-positive on graphs
// with long, cycle-free chains of frequent relaxation); once a node crosses
// the |V| relaxation-count threshold, its predecessor chain is walked to
// confirm a repeated node actually closes a cycle before reporting
// ErrNegativeCycle.
func SPFA[N Number](g Graph, source graph.NodeID, weight WeightFunc[N], opts ...Option[N]) (*Result[N], error) {
	o := defaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	var zero N

	dist := map[graph.NodeID]N{source: zero}
	prev := make(map[graph.NodeID]graph.NodeID)
	relaxCount := make(map[graph.NodeID]int)
	inQueue := map[graph.NodeID]bool{source: true}
	queue := []graph.NodeID{source}

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		edges := g.EdgesDirected(u, graph.Outgoing)
		for edges.Next() {
			e := edges.Edge()
			v := e.To()
			w := weight(e)
			nd := dist[u] + w
			if existing, ok := dist[v]; !ok || nd < existing {
				dist[v] = nd
				prev[v] = u
				relaxCount[v]++

				if relaxCount[v] > n {
					if chainHasCycle(prev, v, n) {
						return nil, ErrNegativeCycle
					}
					// Structural check found no repeat: treat as a false
					// alarm and keep going, but avoid re-triggering
					// immediately on the very next relaxation.
					relaxCount[v] = 0
				}

				if !inQueue[v] {
					queue = append(queue, v)
					inQueue[v] = true
				}
			}
		}
	}

	res := &Result[N]{Dist: dist}
	if o.predecessors == Record {
		res.Prev = prev
	}
	return res, nil
}

// chainHasCycle walks the predecessor chain from start for up to limit
// steps, reporting whether it revisits a node (which only happens if the
// predecessor graph itself contains a cycle, confirming a genuine
// negative-weight cycle rather than a coincidentally long relaxation run).
func chainHasCycle(prev map[graph.NodeID]graph.NodeID, start graph.NodeID, limit int) bool {
	seen := make(map[graph.NodeID]bool, limit)
	cur := start
	for i := 0; i <= limit; i++ {
		if seen[cur] {
			return true
		}
		seen[cur] = true
		p, ok := prev[cur]
		if !ok {
			return false
		}
		cur = p
	}
	return true
}
