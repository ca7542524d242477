package mincut

import (
	"math"

	"github.com/vertigraph/vertigraph/graph"
)

// GlobalMinCut computes a minimum-weight cut of g via the Stoer-Wagner
// algorithm. Each phase runs a maximum-adjacency search over the
// currently active super-vertices, starting from an arbitrary one and
// repeatedly adding whichever remaining vertex has the greatest total
// edge weight to the set already added; the last vertex added is the
// phase's cut weight, separating it alone from everything else merged
// so far. That last vertex is then merged into the second-to-last, and
// the phase repeats on one fewer vertex. The minimum cut weight seen
// across all n-1 phases, together with the set merged into the losing
// vertex at that phase, is the global minimum cut.
func GlobalMinCut(g Graph, weight WeightFunc) (*Result, error) {
	ids, adj := buildAdjacencyMatrix(g, weight)
	n := len(ids)
	if n < 2 {
		return nil, ErrTooFewNodes
	}

	merged := make([][]int, n)
	for i := range merged {
		merged[i] = []int{i}
	}
	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	bestWeight := math.Inf(1)
	var bestSide []int

	for len(active) > 1 {
		cutWeight, s, t := minCutPhase(adj, active)
		if cutWeight < bestWeight {
			bestWeight = cutWeight
			bestSide = append([]int(nil), merged[t]...)
		}

		for _, u := range active {
			if u == s || u == t {
				continue
			}
			adj[s][u] += adj[t][u]
			adj[u][s] += adj[u][t]
		}
		merged[s] = append(merged[s], merged[t]...)

		remaining := active[:0:0]
		for _, u := range active {
			if u != t {
				remaining = append(remaining, u)
			}
		}
		active = remaining
	}

	partition := make([]graph.NodeID, len(bestSide))
	for i, idx := range bestSide {
		partition[i] = ids[idx]
	}
	return &Result{Weight: bestWeight, Partition: partition}, nil
}

// minCutPhase runs one maximum-adjacency search over the active
// super-vertices and returns the cut-of-the-phase weight together with
// s and t, the second-to-last and last vertices added.
func minCutPhase(adj [][]float64, active []int) (cutWeight float64, s, t int) {
	inA := make(map[int]bool, len(active))
	weightToA := make(map[int]float64, len(active))

	order := make([]int, 0, len(active))
	start := active[0]
	inA[start] = true
	order = append(order, start)
	for _, u := range active {
		if u != start {
			weightToA[u] = adj[start][u]
		}
	}

	var lastWeight float64
	for len(order) < len(active) {
		next := -1
		best := math.Inf(-1)
		for _, u := range active {
			if inA[u] {
				continue
			}
			if weightToA[u] > best {
				best = weightToA[u]
				next = u
			}
		}
		inA[next] = true
		order = append(order, next)
		lastWeight = best
		for _, u := range active {
			if !inA[u] {
				weightToA[u] += adj[next][u]
			}
		}
	}

	t = order[len(order)-1]
	s = order[len(order)-2]
	return lastWeight, s, t
}
