package simple_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

func TestUndirectedNeighborsSymmetric(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)

	require.Equal(t, 3, g.NumNodes())
	require.Equal(t, 2, g.NumEdges())

	nb := graph.NodesOf(g.Neighbors(a))
	require.Len(t, nb, 1)
	require.Equal(t, b, nb[0].ID())

	nbB := graph.NodesOf(g.Neighbors(b))
	ids := []graph.NodeID{nbB[0].ID(), nbB[1].ID()}
	require.ElementsMatch(t, []graph.NodeID{a, c}, ids)
}

func TestSelfLoopYieldsOnce(t *testing.T) {
	g := simple.New(simple.AllowLoops())
	a := g.AddNode(nil)
	g.AddEdge(a, a, nil)

	nb := graph.NodesOf(g.Neighbors(a))
	require.Len(t, nb, 1)
	require.Equal(t, a, nb[0].ID())
}

func TestDirectedNeighborsDirected(t *testing.T) {
	g := simple.New(simple.Directed())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, 1.0)
	g.AddEdge(c, b, 1.0)

	out := graph.NodesOf(g.NeighborsDirected(a, graph.Outgoing))
	require.Len(t, out, 1)
	require.Equal(t, b, out[0].ID())

	in := graph.NodesOf(g.NeighborsDirected(b, graph.Incoming))
	ids := []graph.NodeID{in[0].ID(), in[1].ID()}
	require.ElementsMatch(t, []graph.NodeID{a, c}, ids)

	require.Empty(t, graph.NodesOf(g.NeighborsDirected(b, graph.Outgoing)))
}

func TestRemoveNodeRemovesIncidentEdges(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	require.Equal(t, 1, g.NumEdges())

	require.NoError(t, g.RemoveNode(a))
	require.Equal(t, 1, g.NumNodes())
	require.Equal(t, 0, g.NumEdges())
}

func TestCompactIndexHasNoHoles(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	_ = g.AddNode(nil)
	require.NoError(t, g.RemoveNode(b))

	require.Equal(t, g.NumNodes(), g.NodeBound())
	idx := g.ToIndex(a)
	require.True(t, idx >= 0 && idx < g.NodeBound())
}

func TestMultiEdgeRejectedByDefault(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	_, err := g.TryAddEdge(a, b, nil)
	require.ErrorIs(t, err, simple.ErrMultiEdgeNotAllowed)
}

func TestAdjacencyMatrixConsistentWithEdges(t *testing.T) {
	g := simple.New(simple.Directed())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.AddEdge(a, b, nil)

	wit := g.AdjacencyMatrix()
	require.True(t, wit.IsAdjacent(a, b))
	require.False(t, wit.IsAdjacent(b, a))
}

func TestReversedSwapsDirection(t *testing.T) {
	g := simple.New(simple.Directed())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.AddEdge(a, b, nil)

	rev := graph.NewReversed(g)
	out := graph.NodesOf(rev.NeighborsDirected(b, graph.Outgoing))
	require.Len(t, out, 1)
	require.Equal(t, a, out[0].ID())
}

func TestNodeFilteredHidesIncidentEdges(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)

	filtered := graph.NewNodeFiltered(g, func(id graph.NodeID) bool { return id != b })
	require.Equal(t, 2, filtered.NumNodes())
	require.Empty(t, graph.NodesOf(filtered.Neighbors(a)))
	require.Empty(t, graph.EdgesOf(filtered.EdgesOf(a)))
}
