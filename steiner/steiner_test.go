package steiner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/steiner"
)

func floatWeight(e graph.Edge) float64 {
	w, _ := e.(graph.WeightedEdge)
	if w != nil {
		return w.Weight()
	}
	return 1
}

// buildStar builds a center node connected to three leaves at weight 1
// each, plus a direct (expensive) leaf-to-leaf edge that should never be
// preferred over routing through the center.
func buildStar() (*simple.Graph, graph.NodeID, graph.NodeID, graph.NodeID, graph.NodeID) {
	g := simple.New()
	center := g.AddNode(nil)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(center, a, 1.0)
	g.AddEdge(center, b, 1.0)
	g.AddEdge(center, c, 1.0)
	g.AddEdge(a, b, 10.0)
	return g, a, b, c, center
}

func TestApproximateSpansAllTerminalsThroughCenter(t *testing.T) {
	g, a, b, c, center := buildStar()
	_ = center
	res, err := steiner.Approximate(g, []graph.NodeID{a, b, c}, floatWeight)
	require.NoError(t, err)
	require.InDelta(t, 3.0, res.TotalWeight, 1e-9)
	require.Len(t, res.Edges, 3)
}

func TestApproximateTwoTerminalsIsShortestPath(t *testing.T) {
	g, a, b, _, _ := buildStar()
	res, err := steiner.Approximate(g, []graph.NodeID{a, b}, floatWeight)
	require.NoError(t, err)
	require.InDelta(t, 2.0, res.TotalWeight, 1e-9)
}

func TestApproximateRejectsDisconnectedTerminals(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	_, err := steiner.Approximate(g, []graph.NodeID{a, b}, floatWeight)
	require.ErrorIs(t, err, steiner.ErrDisconnected)
}

func TestApproximateFewerThanTwoTerminalsIsEmpty(t *testing.T) {
	g, a, _, _, _ := buildStar()
	res, err := steiner.Approximate(g, []graph.NodeID{a}, floatWeight)
	require.NoError(t, err)
	require.Empty(t, res.Edges)
}
