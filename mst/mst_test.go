package mst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/mst"
)

func floatWeight(e graph.Edge) float64 {
	we, ok := e.(graph.WeightedEdge)
	if !ok {
		return 1
	}
	return we.Weight()
}

func buildPentagon() (*simple.Graph, graph.NodeID) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	e := g.AddNode(nil)
	g.AddEdge(a, b, 1.0)
	g.AddEdge(a, e, 12.0)
	g.AddEdge(b, c, 2.0)
	g.AddEdge(c, d, 3.0)
	g.AddEdge(d, e, 5.0)
	return g, a
}

func TestKruskalComputesMinimumWeight(t *testing.T) {
	g, _ := buildPentagon()
	res, err := mst.Kruskal(g, floatWeight)
	require.NoError(t, err)
	require.Len(t, res.Edges, 4)
	require.InDelta(t, 11.0, res.TotalWeight, 1e-9)
}

func TestPrimComputesSameWeightAsKruskal(t *testing.T) {
	g, root := buildPentagon()
	res, err := mst.Prim(g, root, floatWeight)
	require.NoError(t, err)
	require.Len(t, res.Edges, 4)
	require.InDelta(t, 11.0, res.TotalWeight, 1e-9)
}

func TestKruskalDetectsDisconnectedGraph(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	_ = g.AddNode(nil)
	g.AddEdge(a, b, 1.0)

	_, err := mst.Kruskal(g, floatWeight)
	require.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestPrimRejectsUnknownRoot(t *testing.T) {
	g, _ := buildPentagon()
	_, err := mst.Prim(g, graph.NodeID(9999), floatWeight)
	require.ErrorIs(t, err, mst.ErrRootNotFound)
}

func TestMaterializeCopiesTreeIntoFreshGraph(t *testing.T) {
	g, _ := buildPentagon()
	res, err := mst.Kruskal(g, floatWeight)
	require.NoError(t, err)

	out := simple.New()
	assign := mst.Materialize(res, out, floatWeight)
	require.Len(t, assign, 5)
	require.Equal(t, 4, out.NumEdges())
}
