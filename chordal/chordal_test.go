package chordal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/chordal"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

func TestIsChordalRejectsFourCycle(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(d, a, nil)

	require.False(t, chordal.IsChordal(g))
}

func TestIsChordalAcceptsFourCycleWithChord(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(d, a, nil)
	g.AddEdge(a, c, nil) // chord splits the cycle into two triangles

	require.True(t, chordal.IsChordal(g))
}

func TestIsChordalAcceptsTree(t *testing.T) {
	g := simple.New()
	root := g.AddNode(nil)
	left := g.AddNode(nil)
	right := g.AddNode(nil)
	leaf := g.AddNode(nil)
	g.AddEdge(root, left, nil)
	g.AddEdge(root, right, nil)
	g.AddEdge(left, leaf, nil)

	require.True(t, chordal.IsChordal(g))
}

func TestIsChordalAcceptsCompleteGraph(t *testing.T) {
	g := simple.New()
	ids := make([]graph.NodeID, 5)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			g.AddEdge(ids[i], ids[j], nil)
		}
	}
	require.True(t, chordal.IsChordal(g))
}

func TestMaximumCardinalitySearchVisitsEveryNode(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)

	order := chordal.MaximumCardinalitySearch(g)
	require.ElementsMatch(t, []graph.NodeID{a, b, c}, order)
}
