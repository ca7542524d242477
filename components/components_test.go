package components_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/components"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

func TestWeaklyConnectedComponents(t *testing.T) {
	g := simple.New(simple.Directed())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	_ = g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)

	comps := components.WeaklyConnectedComponents(g)
	require.Len(t, comps, 2)
}

func buildTwoSCCs() (*simple.Graph, graph.NodeID, graph.NodeID, graph.NodeID, graph.NodeID) {
	g := simple.New(simple.Directed())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, a, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(d, c, nil)
	return g, a, b, c, d
}

func TestKosarajuSCC(t *testing.T) {
	g, a, b, c, d := buildTwoSCCs()
	comps := components.KosarajuSCC(g)
	require.Len(t, comps, 2)
	var gotAB, gotCD bool
	for _, comp := range comps {
		if len(comp) == 2 && contains(comp, a) && contains(comp, b) {
			gotAB = true
		}
		if len(comp) == 2 && contains(comp, c) && contains(comp, d) {
			gotCD = true
		}
	}
	require.True(t, gotAB)
	require.True(t, gotCD)
}

func TestTarjanSCCMatchesKosaraju(t *testing.T) {
	g, a, b, c, d := buildTwoSCCs()
	tarjan := components.NewTarjanSCC(g)
	comps := tarjan.Run()
	require.Len(t, comps, 2)
	var gotAB, gotCD bool
	for _, comp := range comps {
		if len(comp) == 2 && contains(comp, a) && contains(comp, b) {
			gotAB = true
		}
		if len(comp) == 2 && contains(comp, c) && contains(comp, d) {
			gotCD = true
		}
	}
	require.True(t, gotAB)
	require.True(t, gotCD)
}

func TestBridgesAndArticulationPoints(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)
	g.AddEdge(c, d, nil)

	bridges := components.Bridges(g)
	require.Len(t, bridges, 1)
	require.ElementsMatch(t, []graph.NodeID{c, d}, []graph.NodeID{bridges[0][0], bridges[0][1]})

	artics := components.ArticulationPoints(g)
	require.Contains(t, artics, c)
}

func TestTwoEdgeConnectedComponents(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)
	g.AddEdge(c, d, nil)

	comps := components.TwoEdgeConnectedComponents(g)
	require.Len(t, comps, 2)
}

func TestCondensationCollapsesSCCsIntoDAG(t *testing.T) {
	g, a, b, c, _ := buildTwoSCCs()
	out := simple.New(simple.Directed())
	assign := components.Condensation(g, out, true)

	require.Equal(t, assign[a], assign[b])
	require.NotEqual(t, assign[a], assign[c])
	require.Equal(t, 2, out.NumNodes())
	require.Equal(t, 1, out.NumEdges())
}

func contains(s []graph.NodeID, id graph.NodeID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}
