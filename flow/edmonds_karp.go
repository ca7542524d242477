package flow

import "github.com/vertigraph/vertigraph/graph"

// EdmondsKarp computes the maximum flow from source to sink using
// Edmonds-Karp's variant of Ford-Fulkerson: BFS finds the shortest
// (fewest-edge) augmenting path in the residual network on every
// iteration, which bounds the number of augmentations polynomially
// regardless of capacity magnitude.
//
// Complexity: O(V·E²).
func EdmondsKarp(g Graph, source, sink graph.NodeID, capacity CapacityFunc, opts ...Option) (*Result, error) {
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
		path, bottleneck := bfsAugmentingPath(adj, flow, source, sink, o.epsilon)
		if path == nil {
			break
		}
		for _, arc := range path {
			pushFlow(arc, flow, bottleneck)
		}
		total += bottleneck
	}

	return &Result{MaxFlow: total, Flow: flow}, nil
}

// FordFulkerson is an alias for EdmondsKarp: the spec's Ford-Fulkerson is
// specified in its BFS shortest-augmenting-path (Edmonds-Karp) form.
func FordFulkerson(g Graph, source, sink graph.NodeID, capacity CapacityFunc, opts ...Option) (*Result, error) {
	return EdmondsKarp(g, source, sink, capacity, opts...)
}

type arcParent struct {
	node graph.NodeID
	arc  residualArc
}

// bfsAugmentingPath finds the shortest residual path from source to sink
// with strictly positive bottleneck capacity, returning it as an ordered
// slice of residual arcs plus that bottleneck. Returns nil if no
// augmenting path remains.
func bfsAugmentingPath(adj map[graph.NodeID][]residualArc, flow map[graph.EdgeID]float64, source, sink graph.NodeID, eps float64) ([]residualArc, float64) {
	parent := make(map[graph.NodeID]arcParent)
	visited := map[graph.NodeID]bool{source: true}
	queue := []graph.NodeID{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == sink {
			break
		}
		for _, arc := range adj[u] {
			if visited[arc.to] {
				continue
			}
			if residualCapacity(arc, flow) <= eps {
				continue
			}
			visited[arc.to] = true
			parent[arc.to] = arcParent{node: u, arc: arc}
			queue = append(queue, arc.to)
		}
	}

	if !visited[sink] {
		return nil, 0
	}

	var path []residualArc
	bottleneck := -1.0
	for cur := sink; cur != source; {
		p := parent[cur]
		path = append([]residualArc{p.arc}, path...)
		cap := residualCapacity(p.arc, flow)
		if bottleneck < 0 || cap < bottleneck {
			bottleneck = cap
		}
		cur = p.node
	}
	return path, bottleneck
}
