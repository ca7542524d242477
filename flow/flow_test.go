package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/flow"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

func capacityOf(e graph.Edge) float64 {
	we, ok := e.(graph.WeightedEdge)
	if !ok {
		return 1
	}
	return we.Weight()
}

// buildNetwork builds the textbook six-node network with max flow 23:
// s->a(16), s->b(13), a->b(10), a->c(12), b->d(14), c->b(9), c->t(20), d->c(7), d->t(4)
func buildNetwork() (g *simple.Graph, s, a, b, c, d, t graph.NodeID) {
	g = simple.New(simple.Directed())
	s = g.AddNode(nil)
	a = g.AddNode(nil)
	b = g.AddNode(nil)
	c = g.AddNode(nil)
	d = g.AddNode(nil)
	t = g.AddNode(nil)
	g.AddEdge(s, a, 16.0)
	g.AddEdge(s, b, 13.0)
	g.AddEdge(a, b, 10.0)
	g.AddEdge(a, c, 12.0)
	g.AddEdge(b, d, 14.0)
	g.AddEdge(c, b, 9.0)
	g.AddEdge(c, t, 20.0)
	g.AddEdge(d, c, 7.0)
	g.AddEdge(d, t, 4.0)
	return g, s, a, b, c, d, t
}

func TestEdmondsKarpMaxFlow(t *testing.T) {
	g, s, _, _, _, _, tgt := buildNetwork()
	result, err := flow.EdmondsKarp(g, s, tgt, capacityOf)
	require.NoError(t, err)
	require.InDelta(t, 23.0, result.MaxFlow, 1e-9)
}

func TestDinicMatchesEdmondsKarp(t *testing.T) {
	g, s, _, _, _, _, tgt := buildNetwork()
	result, err := flow.Dinic(g, s, tgt, capacityOf)
	require.NoError(t, err)
	require.InDelta(t, 23.0, result.MaxFlow, 1e-9)
}

func TestFordFulkersonIsEdmondsKarpAlias(t *testing.T) {
	g, s, _, _, _, _, tgt := buildNetwork()
	result, err := flow.FordFulkerson(g, s, tgt, capacityOf)
	require.NoError(t, err)
	require.InDelta(t, 23.0, result.MaxFlow, 1e-9)
}

func TestMinCutEqualsMaxFlow(t *testing.T) {
	g, s, _, _, _, _, tgt := buildNetwork()
	cap, edges, err := flow.MinCut(g, s, tgt, capacityOf)
	require.NoError(t, err)
	require.InDelta(t, 23.0, cap, 1e-9)
	require.NotEmpty(t, edges)
}

func TestEdmondsKarpRejectsMissingSource(t *testing.T) {
	g, _, _, _, _, _, tgt := buildNetwork()
	_, err := flow.EdmondsKarp(g, graph.NodeID(9999), tgt, capacityOf)
	require.ErrorIs(t, err, flow.ErrSourceNotFound)
}
