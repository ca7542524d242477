package steiner

import (
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/mst"
	"github.com/vertigraph/vertigraph/path"
)

// Approximate builds an approximate minimum Steiner tree spanning every
// node in terminals. Fewer than two terminals trivially need no edges.
func Approximate(g Graph, terminals []graph.NodeID, weight WeightFunc) (*Result, error) {
	if len(terminals) < 2 {
		return &Result{}, nil
	}

	shortest := make(map[graph.NodeID]*path.Result[float64], len(terminals))
	for _, t := range terminals {
		res, err := path.Dijkstra[float64](g, t, func(e graph.Edge) float64 { return weight(e) },
			path.WithPredecessors[float64](path.Record))
		if err != nil {
			return nil, err
		}
		shortest[t] = res
	}

	closure := simple.New()
	closureOf := make(map[graph.NodeID]graph.NodeID, len(terminals))
	originalOf := make(map[graph.NodeID]graph.NodeID, len(terminals))
	for _, t := range terminals {
		cid := closure.AddNode(nil)
		closureOf[t] = cid
		originalOf[cid] = t
	}
	for i := 0; i < len(terminals); i++ {
		for j := i + 1; j < len(terminals); j++ {
			u, v := terminals[i], terminals[j]
			dist, ok := shortest[u].Dist[v]
			if !ok {
				return nil, ErrDisconnected
			}
			closure.AddEdge(closureOf[u], closureOf[v], dist)
		}
	}

	treeRes, err := mst.Kruskal(closure, func(e graph.Edge) float64 {
		w, _ := closure.EdgeWeight(e.ID())
		return w.(float64)
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[graph.EdgeID]bool)
	var edges []graph.Edge
	total := 0.0
	for _, ce := range treeRes.Edges {
		u := originalOf[ce.From()]
		v := originalOf[ce.To()]
		nodePath, ok := shortest[u].PathTo(v)
		if !ok {
			return nil, ErrDisconnected
		}
		for i := 0; i+1 < len(nodePath); i++ {
			e := findEdge(g, nodePath[i], nodePath[i+1])
			if e == nil || seen[e.ID()] {
				continue
			}
			seen[e.ID()] = true
			edges = append(edges, e)
			total += weight(e)
		}
	}

	return &Result{Edges: edges, TotalWeight: total}, nil
}

// findEdge locates the original-graph edge connecting from and to,
// checking both endpoints since an undirected storage may only list the
// edge under one of the two nodes' outgoing sets.
func findEdge(g Graph, from, to graph.NodeID) graph.Edge {
	for _, e := range graph.EdgesOf(g.EdgesDirected(from, graph.Outgoing)) {
		if e.To() == to || e.From() == to {
			return e
		}
	}
	for _, e := range graph.EdgesOf(g.EdgesDirected(to, graph.Outgoing)) {
		if e.To() == from || e.From() == from {
			return e
		}
	}
	return nil
}
