package flow

import "github.com/vertigraph/vertigraph/graph"

// MinCut computes a minimum s-t cut by running Edmonds-Karp to exhaustion,
// then finding the set S of nodes still reachable from source in the
// final residual graph; by max-flow/min-cut duality, the edges of g
// crossing from S to its complement form a minimum cut whose capacity
// equals the max flow.
func MinCut(g Graph, source, sink graph.NodeID, capacity CapacityFunc, opts ...Option) (capacityOut float64, cutEdges []graph.EdgeID, err error) {
	o := resolveOptions(opts)

	result, err := EdmondsKarp(g, source, sink, capacity, opts...)
	if err != nil {
		return 0, nil, err
	}

	adj, err := buildResidualIndex(g, capacity)
	if err != nil {
		return 0, nil, err
	}

	reachable := map[graph.NodeID]bool{source: true}
	queue := []graph.NodeID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, arc := range adj[u] {
			if reachable[arc.to] {
				continue
			}
			if residualCapacity(arc, result.Flow) <= o.epsilon {
				continue
			}
			reachable[arc.to] = true
			queue = append(queue, arc.to)
		}
	}

	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		if !reachable[n.ID()] {
			continue
		}
		out := g.EdgesDirected(n.ID(), graph.Outgoing)
		for out.Next() {
			e := out.Edge()
			if !reachable[e.To()] {
				cutEdges = append(cutEdges, e.ID())
				capacityOut += capacity(e)
			}
		}
	}

	return capacityOut, cutEdges, nil
}
