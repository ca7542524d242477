package mst

import (
	"sort"

	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/unionfind"
)

// Kruskal computes a minimum spanning tree by sorting every edge by
// weight and adding each in turn unless its endpoints are already
// connected, tracked via a union-find forest — exactly the teacher's
// prim_kruskal.Kruskal strategy, generalized from *core.Graph + string
// ids to the capability layer. Ties break by the edge's original
// iteration order (a stable sort), matching the teacher's determinism
// guarantee.
//
// Returns ErrDisconnected if fewer than NumNodes()-1 edges were added,
// i.e. the graph has more than one node but is not fully connected.
func Kruskal(g Graph, weight WeightFunc) (*Result, error) {
	n := g.NumNodes()
	if n <= 1 {
		return &Result{}, nil
	}

	edges := graph.EdgesOf(g.Edges())
	sort.SliceStable(edges, func(i, j int) bool {
		return weight(edges[i]) < weight(edges[j])
	})

	uf := unionfind.New(g.NodeBound())
	res := &Result{}
	for _, e := range edges {
		u, v := g.ToIndex(e.From()), g.ToIndex(e.To())
		if uf.Find(u) == uf.Find(v) {
			continue
		}
		uf.Union(u, v)
		res.Edges = append(res.Edges, e)
		res.TotalWeight += weight(e)
		if len(res.Edges) == n-1 {
			break
		}
	}

	if len(res.Edges) != n-1 {
		return nil, ErrDisconnected
	}
	return res, nil
}
