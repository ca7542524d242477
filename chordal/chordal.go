package chordal

import "github.com/vertigraph/vertigraph/graph"

// IsChordal reports whether g is chordal, i.e. every cycle of four or
// more nodes has a chord. It runs MaximumCardinalitySearch to get a
// candidate elimination ordering, numbers nodes 1..n in the reverse of
// the visiting order (the first node visited gets the highest number),
// then applies the Tarjan-Yannakakis test: for each node v in increasing
// number order, its neighbors numbered higher than v must all be
// neighbors of whichever of them has the smallest such number — exactly
// the condition for v's later neighborhood to be a clique. The ordering
// is a genuine perfect elimination ordering iff every node passes.
func IsChordal(g Graph) bool {
	ids, adjacency := denseAdjacency(g)
	n := len(ids)
	if n <= 2 {
		return true
	}

	visitOrder := MaximumCardinalitySearch(g)
	indexOf := make(map[graph.NodeID]int, n)
	for i, id := range ids {
		indexOf[id] = i
	}

	// number[idx] is 1-based; the first node visited gets number n.
	number := make([]int, n)
	for pos, id := range visitOrder {
		number[indexOf[id]] = n - pos
	}

	// byNumber[k] is the dense index of the node numbered k (1-based).
	byNumber := make([]int, n+1)
	for idx, num := range number {
		byNumber[num] = idx
	}

	neighborSet := make([]map[int]bool, n)
	for i, nbrs := range adjacency {
		neighborSet[i] = make(map[int]bool, len(nbrs))
		for _, j := range nbrs {
			neighborSet[i][j] = true
		}
	}

	for k := 1; k < n; k++ {
		v := byNumber[k]
		var later []int
		for _, w := range adjacency[v] {
			if number[w] > k {
				later = append(later, w)
			}
		}
		if len(later) == 0 {
			continue
		}

		parent := later[0]
		for _, w := range later[1:] {
			if number[w] < number[parent] {
				parent = w
			}
		}

		for _, w := range later {
			if w == parent {
				continue
			}
			if !neighborSet[parent][w] {
				return false
			}
		}
	}
	return true
}
