package coloring

import (
	"golang.org/x/tools/container/intsets"

	"github.com/vertigraph/vertigraph/graph"
)

// WFC colors g via wave-function collapse. It tries successively larger
// candidate color counts (starting at Options.initialColors) until an
// attempt completes every node's domain down to a single color, or the
// configured maxColors (if any) is exceeded. The max-degree+1 bound
// always admits a valid greedy coloring, so an uncapped search is
// guaranteed to terminate.
func WFC(g Graph, opts ...Option) (*Result, error) {
	o := resolveOptions(opts)
	ids, adjacency := buildAdjacency(g)
	n := len(ids)
	if n == 0 {
		return &Result{Colors: map[graph.NodeID]int{}}, nil
	}

	upperBound := maxDegree(adjacency) + 1
	ceiling := upperBound
	if o.maxColors > 0 && o.maxColors < ceiling {
		ceiling = o.maxColors
	}

	restarts := 0
	for k := o.initialColors; k <= ceiling; k++ {
		colors, ok := attempt(adjacency, k)
		if ok {
			out := make(map[graph.NodeID]int, n)
			for i, id := range ids {
				out[id] = colors[i]
			}
			return &Result{Colors: out, NumColors: k, Restarts: restarts}, nil
		}
		restarts++
	}
	return nil, ErrNoValidColoring
}

func buildAdjacency(g Graph) ([]graph.NodeID, [][]int) {
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

func maxDegree(adjacency [][]int) int {
	max := 0
	for _, nbrs := range adjacency {
		if len(nbrs) > max {
			max = len(nbrs)
		}
	}
	return max
}

// attempt runs one wave-function-collapse pass with k candidate colors,
// reporting the collapsed color assignment and whether it completed
// without a domain emptying out.
func attempt(adjacency [][]int, k int) ([]int, bool) {
	n := len(adjacency)
	domains := make([]intsets.Sparse, n)
	for i := range domains {
		for c := 0; c < k; c++ {
			domains[i].Insert(c)
		}
	}

	collapsed := make([]int, n)
	done := make([]bool, n)
	remaining := n

	for remaining > 0 {
		node := lowestEntropyNode(domains, done)
		color := domains[node].Min()
		collapsed[node] = color
		done[node] = true
		remaining--

		for _, nbr := range adjacency[node] {
			if done[nbr] {
				continue
			}
			domains[nbr].Remove(color)
			if domains[nbr].IsEmpty() {
				return nil, false
			}
		}
	}
	return collapsed, true
}

// lowestEntropyNode returns the not-yet-collapsed node with the smallest
// domain, ties broken toward the lowest index so the search is
// deterministic.
func lowestEntropyNode(domains []intsets.Sparse, done []bool) int {
	best := -1
	bestLen := -1
	for i := range domains {
		if done[i] {
			continue
		}
		size := domains[i].Len()
		if best == -1 || size < bestLen {
			best = i
			bestLen = size
		}
	}
	return best
}
