package path

import (
	"math"

	"github.com/vertigraph/vertigraph/graph"
)

// CompactGraph is the capability conjunction Floyd-Warshall and Johnson's
// algorithm need: dense node indices for an O(V^2) distance matrix.
type CompactGraph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.NeighborsDirected
	graph.EdgesDirected
}

// FloydWarshall computes all-pairs shortest distances in g as a dense
// NodeBound() x NodeBound() matrix indexed by g.ToIndex. Unreached pairs
// hold math.MaxFloat64. Tolerates negative edge weights; a negative value
// surviving on the diagonal after relaxation indicates a negative cycle and
// is reported as ErrNegativeCycle, per petgraph's diagonal check. Addition
// is guarded against overflowing past the unreachable sentinel, so summing
// two "unreachable" entries never wraps into a spuriously finite distance.
func FloydWarshall(g CompactGraph, weight func(e graph.Edge) float64) ([][]float64, error) {
	n := g.NodeBound()
	const inf = math.MaxFloat64

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = inf
			}
		}
	}

	nodes := graph.NodesOf(g.Nodes())
	for _, node := range nodes {
		u := g.ToIndex(node.ID())
		edges := g.EdgesDirected(node.ID(), graph.Outgoing)
		for edges.Next() {
			e := edges.Edge()
			v := g.ToIndex(e.To())
			w := weight(e)
			if w < dist[u][v] {
				dist[u][v] = w
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == inf {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == inf {
					continue
				}
				// Checked addition: both legs are already known finite
				// here, so this never silently overflows past inf.
				candidate := dist[i][k] + dist[k][j]
				if candidate < dist[i][j] {
					dist[i][j] = candidate
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return dist, ErrNegativeCycle
		}
	}

	return dist, nil
}
