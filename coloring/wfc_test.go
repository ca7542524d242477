package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/coloring"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

func assertProperColoring(t *testing.T, g *simple.Graph, colors map[graph.NodeID]int) {
	t.Helper()
	edges := graph.EdgesOf(g.Edges())
	for _, e := range edges {
		require.NotEqual(t, colors[e.From()], colors[e.To()], "adjacent nodes %d,%d share a color", e.From(), e.To())
	}
}

func TestWFCColorsTriangleWithThreeColors(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)

	res, err := coloring.WFC(g)
	require.NoError(t, err)
	require.Equal(t, 3, res.NumColors)
	assertProperColoring(t, g, res.Colors)
}

func TestWFCColorsBipartiteWithTwoColors(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, c, nil)
	g.AddEdge(a, d, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(b, d, nil)

	res, err := coloring.WFC(g)
	require.NoError(t, err)
	require.Equal(t, 2, res.NumColors)
	assertProperColoring(t, g, res.Colors)
}

func TestWFCRespectsMaxColors(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)

	_, err := coloring.WFC(g, coloring.WithMaxColors(2))
	require.ErrorIs(t, err, coloring.ErrNoValidColoring)
}

func TestWFCEmptyGraph(t *testing.T) {
	g := simple.New()
	res, err := coloring.WFC(g)
	require.NoError(t, err)
	require.Empty(t, res.Colors)
}
