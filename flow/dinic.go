package flow

import "github.com/vertigraph/vertigraph/graph"

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm: repeatedly build a BFS level graph restricting arcs to those
// advancing exactly one level, then push a blocking flow through it via
// DFS with per-node advancing iterators (so a dead-end arc is never
// retried within the same phase). Handles backward-residual edges
// correctly, so the result is a true maximum rather than a local optimum.
//
// Complexity: O(E·√V) on unit-capacity networks, O(V²·E) in general.
func Dinic(g Graph, source, sink graph.NodeID, capacity CapacityFunc, opts ...Option) (*Result, error) {
	o := resolveOptions(opts)

	if !hasNode(g, source) {
		return nil, ErrSourceNotFound
	}
	if !hasNode(g, sink) {
		return nil, ErrSinkNotFound
	}

	adj, err := buildResidualIndex(g, capacity)
	if err != nil {
		return nil, err
	}
	flow := make(map[graph.EdgeID]float64)

	var total float64
	for {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}

		level := dinicLevels(adj, flow, source, o.epsilon)
		if _, reached := level[sink]; !reached {
			break
		}

		iter := make(map[graph.NodeID]int)
		for {
			if err := o.ctx.Err(); err != nil {
				return nil, err
			}
			pushed := dinicBlockingDFS(adj, flow, level, iter, source, sink, inf, o.epsilon)
			if pushed <= o.epsilon {
				break
			}
			total += pushed
		}
	}

	return &Result{MaxFlow: total, Flow: flow}, nil
}

const inf = 1e18

func dinicLevels(adj map[graph.NodeID][]residualArc, flow map[graph.EdgeID]float64, source graph.NodeID, eps float64) map[graph.NodeID]int {
	level := map[graph.NodeID]int{source: 0}
	queue := []graph.NodeID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, arc := range adj[u] {
			if residualCapacity(arc, flow) <= eps {
				continue
			}
			if _, seen := level[arc.to]; seen {
				continue
			}
			level[arc.to] = level[u] + 1
			queue = append(queue, arc.to)
		}
	}
	return level
}

func dinicBlockingDFS(adj map[graph.NodeID][]residualArc, flow map[graph.EdgeID]float64, level map[graph.NodeID]int, iter map[graph.NodeID]int, u, sink graph.NodeID, available, eps float64) float64 {
	if u == sink {
		return available
	}
	arcs := adj[u]
	for ; iter[u] < len(arcs); iter[u]++ {
		arc := arcs[iter[u]]
		cap := residualCapacity(arc, flow)
		if cap <= eps {
			continue
		}
		nextLevel, ok := level[arc.to]
		if !ok || nextLevel != level[u]+1 {
			continue
		}
		send := available
		if cap < send {
			send = cap
		}
		pushed := dinicBlockingDFS(adj, flow, level, iter, arc.to, sink, send, eps)
		if pushed > eps {
			pushFlow(arc, flow, pushed)
			return pushed
		}
	}
	return 0
}
