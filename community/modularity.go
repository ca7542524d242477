package community

import (
	"github.com/vertigraph/vertigraph/gerr"
	"github.com/vertigraph/vertigraph/graph"
)

// Modularity computes the modularity Q of a caller-supplied partition of
// g's nodes: Q = Σ_c [L_c/m - (D_c/2m)²], where L_c is the total weight
// of edges internal to community c, D_c is the sum of its nodes'
// degrees, and m is the graph's total edge weight. partition must cover
// every node exactly once; otherwise a *gerr.NotAPartition error
// reports which nodes were missing or duplicated.
func Modularity(g Graph, partition [][]graph.NodeID, weight WeightFunc) (float64, error) {
	wg := buildWeightedGraph(g, weight)
	communityOf, err := assignCommunities(wg.ids, partition)
	if err != nil {
		return 0, err
	}
	return modularityOf(wg, communityOf, len(partition)), nil
}

// assignCommunities maps each dense node index to the partition subset
// it belongs to, validating that partition is a genuine partition of
// ids. Nodes named in partition but absent from ids are ignored, since
// they belong to no node this graph has.
func assignCommunities(ids []graph.NodeID, partition [][]graph.NodeID) ([]int, error) {
	indexOf := make(map[graph.NodeID]int, len(ids))
	for i, id := range ids {
		indexOf[id] = i
	}

	communityOf := make([]int, len(ids))
	for i := range communityOf {
		communityOf[i] = -1
	}

	var duplicated []graph.NodeID
	for ci, subset := range partition {
		for _, id := range subset {
			idx, ok := indexOf[id]
			if !ok {
				continue
			}
			if communityOf[idx] != -1 {
				duplicated = append(duplicated, id)
				continue
			}
			communityOf[idx] = ci
		}
	}

	var missing []graph.NodeID
	for i, c := range communityOf {
		if c == -1 {
			missing = append(missing, ids[i])
		}
	}
	if len(missing) > 0 || len(duplicated) > 0 {
		return nil, &gerr.NotAPartition{Missing: missing, Duplicated: duplicated}
	}
	return communityOf, nil
}

// modularityOf computes Q given a dense weighted graph and a community
// assignment already known to be a valid partition.
func modularityOf(wg *weightedGraph, communityOf []int, numCommunities int) float64 {
	if wg.m == 0 {
		return 0
	}
	internal := make([]float64, numCommunities)
	degreeSum := make([]float64, numCommunities)
	for i, c := range communityOf {
		degreeSum[c] += wg.degree[i]
	}
	for _, e := range wg.edges {
		if communityOf[e.u] == communityOf[e.v] {
			internal[communityOf[e.u]] += e.w
		}
	}

	q := 0.0
	twoM := 2 * wg.m
	for c := 0; c < numCommunities; c++ {
		q += internal[c]/wg.m - (degreeSum[c]/twoM)*(degreeSum[c]/twoM)
	}
	return q
}
