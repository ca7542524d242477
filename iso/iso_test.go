package iso_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/iso"
)

func buildTriangle() *simple.Graph {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)
	return g
}

func buildSquare() *simple.Graph {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(d, a, nil)
	return g
}

func TestIsIsomorphicDetectsTriangles(t *testing.T) {
	g0 := buildTriangle()
	g1 := buildTriangle()
	require.True(t, iso.IsIsomorphic(g0, g1))
}

func TestIsIsomorphicRejectsDifferentShapes(t *testing.T) {
	require.False(t, iso.IsIsomorphic(buildTriangle(), buildSquare()))
}

func TestIsIsomorphicSubgraphRejectsTriangleInSquare(t *testing.T) {
	g1 := buildSquare()
	nodes := simple.New()
	a := nodes.AddNode(nil)
	b := nodes.AddNode(nil)
	c := nodes.AddNode(nil)
	nodes.AddEdge(a, b, nil)
	nodes.AddEdge(b, c, nil)
	nodes.AddEdge(c, a, nil)

	// g1 (a 4-cycle) has no triangle, so the pattern must not match.
	require.False(t, iso.IsIsomorphicSubgraph(nodes, g1))
}

func TestIsIsomorphicMatchingHonorsNodeWeights(t *testing.T) {
	g0 := simple.New()
	a0 := g0.AddNode("red")
	b0 := g0.AddNode("blue")
	g0.AddEdge(a0, b0, nil)

	g1 := simple.New()
	a1 := g1.AddNode("blue")
	b1 := g1.AddNode("red")
	g1.AddEdge(a1, b1, nil)

	nodeMatch := func(w0, w1 interface{}) bool { return w0 == w1 }
	require.True(t, iso.IsIsomorphicMatching(g0, g1, nodeMatch, nil))
}
