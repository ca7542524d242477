package simplepath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/simplepath"
)

// buildDiamond builds a-b-d and a-c-d, plus a direct a-d edge, giving
// three simple paths of intermediate lengths 1, 1, and 0 respectively.
func buildDiamond() (*simple.Graph, graph.NodeID, graph.NodeID) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, d, nil)
	g.AddEdge(a, c, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(a, d, nil)
	return g, a, d
}

func collectPaths(it *simplepath.Iterator) [][]graph.NodeID {
	var out [][]graph.NodeID
	for it.Next() {
		path := it.Path()
		cp := make([]graph.NodeID, len(path))
		copy(cp, path)
		out = append(out, cp)
	}
	return out
}

func TestIteratorFindsAllThreePaths(t *testing.T) {
	g, a, d := buildDiamond()
	it := simplepath.New(g, a, d)
	paths := collectPaths(it)
	require.Len(t, paths, 3)
}

func TestIteratorFiltersByMinIntermediate(t *testing.T) {
	g, a, d := buildDiamond()
	it := simplepath.New(g, a, d, simplepath.WithMinNodes(1))
	paths := collectPaths(it)
	require.Len(t, paths, 2)
	for _, p := range paths {
		require.Len(t, p, 3)
	}
}

func TestIteratorFiltersByMaxIntermediate(t *testing.T) {
	g, a, d := buildDiamond()
	it := simplepath.New(g, a, d, simplepath.WithMaxNodes(0))
	paths := collectPaths(it)
	require.Len(t, paths, 1)
	require.Equal(t, []graph.NodeID{a, d}, paths[0])
}

func TestIteratorExhaustsThenReturnsFalse(t *testing.T) {
	g, a, d := buildDiamond()
	it := simplepath.New(g, a, d)
	for it.Next() {
	}
	require.False(t, it.Next())
}
