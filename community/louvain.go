package community

import "github.com/vertigraph/vertigraph/graph"

// Louvain detects communities by repeated local moving and aggregation:
// each pass greedily reassigns every node to whichever neighboring
// community most increases modularity, then collapses each surviving
// community into a single super-node and repeats on the condensed
// graph. It stops once a local-moving pass makes no move, and returns
// the resulting partition of g's original nodes alongside its
// modularity.
func Louvain(g Graph, weight WeightFunc) ([][]graph.NodeID, float64) {
	original := buildWeightedGraph(g, weight)

	wg := original
	owners := make([][]graph.NodeID, len(wg.ids))
	for i, id := range wg.ids {
		owners[i] = []graph.NodeID{id}
	}

	for {
		communityOf := make([]int, len(wg.ids))
		for i := range communityOf {
			communityOf[i] = i
		}
		if !localMovingPhase(wg, communityOf) {
			break
		}
		wg, owners = aggregate(wg, communityOf, owners)
	}

	communityOf, err := assignCommunities(original.ids, owners)
	if err != nil {
		// owners is built from original.ids by construction and can
		// never fail validation; this path is unreachable.
		return owners, 0
	}
	return owners, modularityOf(original, communityOf, len(owners))
}

// localMovingPhase repeatedly sweeps every node, moving it into
// whichever community (its own included) maximizes the standard
// simplified modularity-gain term
//
//	gain(c) = k_i,in(c) - sigmaTot(c)*k_i / (2m)
//
// until a full sweep produces no move. It reports whether any node
// ever moved.
func localMovingPhase(wg *weightedGraph, communityOf []int) bool {
	n := len(wg.ids)
	if wg.m == 0 || n == 0 {
		return false
	}

	sigmaTot := make([]float64, n)
	copy(sigmaTot, wg.degree)
	twoM := 2 * wg.m

	improvedAny := false
	for {
		improvedRound := false
		for i := 0; i < n; i++ {
			current := communityOf[i]
			sigmaTot[current] -= wg.degree[i]

			kIn := make(map[int]float64)
			for _, nb := range wg.adjacency[i] {
				if nb.idx == i {
					continue
				}
				kIn[communityOf[nb.idx]] += nb.weight
			}

			best := current
			bestGain := kIn[current] - sigmaTot[current]*wg.degree[i]/twoM
			for c, w := range kIn {
				gain := w - sigmaTot[c]*wg.degree[i]/twoM
				if gain > bestGain+1e-12 {
					bestGain = gain
					best = c
				}
			}

			sigmaTot[best] += wg.degree[i]
			if best != current {
				communityOf[i] = best
				improvedRound = true
				improvedAny = true
			}
		}
		if !improvedRound {
			break
		}
	}
	return improvedAny
}

// aggregate collapses wg's nodes into one super-node per community:
// internal edges become a self-loop whose weight is the raw sum of the
// internal edges' weights (not doubled — a self-loop already counts
// twice toward degree under the module's convention, matching the
// original pair of contributions the internal edges made before
// collapsing), and cross-community edges are summed between the
// corresponding community pairs. owners tracks, per surviving
// super-node, the original graph node IDs it now stands for.
func aggregate(wg *weightedGraph, communityOf []int, owners [][]graph.NodeID) (*weightedGraph, [][]graph.NodeID) {
	remap := make(map[int]int)
	for _, c := range communityOf {
		if _, ok := remap[c]; !ok {
			remap[c] = len(remap)
		}
	}
	k := len(remap)

	newOwners := make([][]graph.NodeID, k)
	for i, c := range communityOf {
		nc := remap[c]
		newOwners[nc] = append(newOwners[nc], owners[i]...)
	}

	type pair struct{ a, b int }
	weightOf := make(map[pair]float64)
	for _, e := range wg.edges {
		a := remap[communityOf[e.u]]
		b := remap[communityOf[e.v]]
		if a > b {
			a, b = b, a
		}
		weightOf[pair{a, b}] += e.w
	}

	newWg := &weightedGraph{
		ids:       make([]graph.NodeID, k),
		adjacency: make([][]neighborWeight, k),
		degree:    make([]float64, k),
	}
	for i := 0; i < k; i++ {
		newWg.ids[i] = graph.NodeID(i)
	}
	for p, w := range weightOf {
		newWg.m += w
		newWg.edges = append(newWg.edges, weightedEdge{u: p.a, v: p.b, w: w})
		if p.a == p.b {
			newWg.degree[p.a] += 2 * w
			newWg.adjacency[p.a] = append(newWg.adjacency[p.a], neighborWeight{idx: p.a, weight: w})
			continue
		}
		newWg.degree[p.a] += w
		newWg.degree[p.b] += w
		newWg.adjacency[p.a] = append(newWg.adjacency[p.a], neighborWeight{idx: p.b, weight: w})
		newWg.adjacency[p.b] = append(newWg.adjacency[p.b], neighborWeight{idx: p.a, weight: w})
	}

	return newWg, newOwners
}
