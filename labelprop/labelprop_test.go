package labelprop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/labelprop"
)

// buildTwoCliques builds two dense triangles {a,b,c} and {d,e,f} joined by
// a single bridge edge c-d, so propagation should settle each triangle on
// one shared label.
func buildTwoCliques() (*simple.Graph, map[string]graph.NodeID) {
	g := simple.New()
	ids := map[string]graph.NodeID{
		"a": g.AddNode(nil),
		"b": g.AddNode(nil),
		"c": g.AddNode(nil),
		"d": g.AddNode(nil),
		"e": g.AddNode(nil),
		"f": g.AddNode(nil),
	}
	g.AddEdge(ids["a"], ids["b"], nil)
	g.AddEdge(ids["b"], ids["c"], nil)
	g.AddEdge(ids["c"], ids["a"], nil)
	g.AddEdge(ids["d"], ids["e"], nil)
	g.AddEdge(ids["e"], ids["f"], nil)
	g.AddEdge(ids["f"], ids["d"], nil)
	g.AddEdge(ids["c"], ids["d"], nil)
	return g, ids
}

func TestPropagateSeparatesTwoCliques(t *testing.T) {
	g, ids := buildTwoCliques()
	res := labelprop.Propagate(g)

	require.Equal(t, res.Labels[ids["a"]], res.Labels[ids["b"]])
	require.Equal(t, res.Labels[ids["b"]], res.Labels[ids["c"]])
	require.Equal(t, res.Labels[ids["d"]], res.Labels[ids["e"]])
	require.Equal(t, res.Labels[ids["e"]], res.Labels[ids["f"]])
}

func TestPropagateConverges(t *testing.T) {
	g, _ := buildTwoCliques()
	res := labelprop.Propagate(g)
	require.True(t, res.Converged)
	require.LessOrEqual(t, res.Iterations, 20)
}

func TestPropagateRespectsSeedLabels(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.AddEdge(a, b, nil)

	res := labelprop.Propagate(g, labelprop.WithSeedLabels(map[graph.NodeID]graph.NodeID{a: 99, b: 99}))
	require.Equal(t, graph.NodeID(99), res.Labels[a])
	require.Equal(t, graph.NodeID(99), res.Labels[b])
}
