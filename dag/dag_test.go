package dag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/dag"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

func buildDiamond() (*simple.Graph, graph.NodeID, graph.NodeID, graph.NodeID, graph.NodeID) {
	g := simple.New(simple.Directed())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(a, c, nil)
	g.AddEdge(b, d, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(a, d, nil) // redundant: a->b->d and a->c->d already reach d
	return g, a, b, c, d
}

func TestIsAcyclic(t *testing.T) {
	g, _, _, _, _ := buildDiamond()
	require.True(t, dag.IsAcyclic(g))

	g2 := simple.New(simple.Directed())
	x := g2.AddNode(nil)
	y := g2.AddNode(nil)
	g2.AddEdge(x, y, nil)
	g2.AddEdge(y, x, nil)
	require.False(t, dag.IsAcyclic(g2))
}

func TestDetectCyclesFindsSimpleCycle(t *testing.T) {
	g := simple.New(simple.Directed())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)

	cycles, err := dag.DetectCycles(g)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	require.Equal(t, a, cycles[0][0])
	require.Equal(t, a, cycles[0][len(cycles[0])-1])
}

func TestIsAcyclicUndirectedOnTreeIsTrue(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(a, c, nil)

	require.True(t, dag.IsAcyclicUndirected(g))
}

func TestIsAcyclicUndirectedOnTriangleIsFalse(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)

	require.False(t, dag.IsAcyclicUndirected(g))
}

func TestTransitiveReductionDropsRedundantEdge(t *testing.T) {
	g, a, _, _, d := buildDiamond()
	require.Equal(t, 5, g.NumEdges())

	kept, err := dag.TransitiveReduction(g)
	require.NoError(t, err)
	require.Len(t, kept, 4)
	for _, e := range kept {
		require.False(t, e[0] == a && e[1] == d, "direct a->d edge should be pruned as redundant")
	}
}

func TestTransitiveClosureReachesTransitiveSuccessors(t *testing.T) {
	g, a, _, _, d := buildDiamond()
	closure, err := dag.TransitiveClosure(g)
	require.NoError(t, err)
	require.Contains(t, closure[a], d)
}
