package mst

import (
	"container/heap"

	"github.com/vertigraph/vertigraph/graph"
)

type primItem struct {
	edge   graph.Edge
	weight float64
}

type primHeap []primItem

func (h primHeap) Len() int            { return len(h) }
func (h primHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h primHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *primHeap) Push(x interface{}) { *h = append(*h, x.(primItem)) }
func (h *primHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Prim computes a minimum spanning tree by growing a single tree from
// root: repeatedly extract the cheapest edge connecting the current tree
// to an outside node from a min-heap of frontier edges, exactly the
// teacher's prim_kruskal.Prim strategy adapted to the capability layer
// (EdgesOfNode in place of a direct adjacency-list lookup).
//
// Returns ErrRootNotFound if root is not a node of g, ErrDisconnected if
// fewer than NumNodes()-1 edges were added.
func Prim(g PrimGraph, root graph.NodeID, weight WeightFunc) (*Result, error) {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	found := false
	for _, nd := range nodes {
		if nd.ID() == root {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrRootNotFound
	}
	if n <= 1 {
		return &Result{}, nil
	}

	visited := make(map[graph.NodeID]bool, n)
	visited[root] = true

	h := &primHeap{}
	heap.Init(h)
	pushFrontier := func(id graph.NodeID) {
		edges := g.EdgesOf(id)
		for edges.Next() {
			e := edges.Edge()
			other := e.To()
			if other == id {
				other = e.From()
			}
			if visited[other] {
				continue
			}
			heap.Push(h, primItem{edge: e, weight: weight(e)})
		}
	}
	pushFrontier(root)

	res := &Result{}
	for h.Len() > 0 && len(res.Edges) < n-1 {
		item := heap.Pop(h).(primItem)
		e := item.edge
		u, v := e.From(), e.To()
		var next graph.NodeID
		switch {
		case visited[u] && !visited[v]:
			next = v
		case visited[v] && !visited[u]:
			next = u
		default:
			continue
		}
		visited[next] = true
		res.Edges = append(res.Edges, e)
		res.TotalWeight += item.weight
		pushFrontier(next)
	}

	if len(res.Edges) != n-1 {
		return nil, ErrDisconnected
	}
	return res, nil
}
