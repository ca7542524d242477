package chordal

import "github.com/vertigraph/vertigraph/graph"

// MaximumCardinalitySearch visits every node of g, always picking next
// an unvisited node with the most already-visited neighbors (ties broken
// arbitrarily, LIFO within a bucket), and returns the visiting order:
// the first node picked is first in the result. Candidate picks are
// tracked in buckets keyed by current weight rather than a heap; a node's
// old bucket entry is left
// in place when its weight increases; a fresh entry in the new bucket is
// pushed instead, and stale entries are skipped when popped.
func MaximumCardinalitySearch(g Graph) []graph.NodeID {
	ids, adjacency := denseAdjacency(g)
	n := len(ids)
	if n == 0 {
		return nil
	}

	weight := make([]int, n)
	picked := make([]bool, n)
	buckets := make([][]int, n+1)
	for i := 0; i < n; i++ {
		buckets[0] = append(buckets[0], i)
	}

	order := make([]graph.NodeID, 0, n)
	level := 0
	for len(order) < n {
		for level > 0 && len(buckets[level]) == 0 {
			level--
		}
		bucket := buckets[level]
		idx := bucket[len(bucket)-1]
		buckets[level] = bucket[:len(bucket)-1]
		if picked[idx] || weight[idx] != level {
			continue
		}

		picked[idx] = true
		order = append(order, ids[idx])
		for _, nbr := range adjacency[idx] {
			if picked[nbr] {
				continue
			}
			weight[nbr]++
			buckets[weight[nbr]] = append(buckets[weight[nbr]], nbr)
			if weight[nbr] > level {
				level = weight[nbr]
			}
		}
	}
	return order
}

func denseAdjacency(g Graph) ([]graph.NodeID, [][]int) {
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]graph.NodeID, len(nodes))
	for i, node := range nodes {
		ids[i] = node.ID()
	}
	adjacency := make([][]int, len(nodes))
	for i, node := range nodes {
		nbrs := g.Neighbors(node.ID())
		for nbrs.Next() {
			j := g.ToIndex(nbrs.Node().ID())
			if j != i {
				adjacency[i] = append(adjacency[i], j)
			}
		}
	}
	return ids, adjacency
}
