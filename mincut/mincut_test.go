package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/gen"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/mincut"
)

func unitWeight(graph.Edge) float64 { return 1 }

// buildBridgedTriangles builds two triangles {a,b,c} and {d,e,f} joined by
// a single bridge edge c-d, so the global minimum cut is exactly that
// bridge, weight 1, separating one triangle from the other.
func buildBridgedTriangles() (*simple.Graph, map[string]graph.NodeID) {
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

func TestGlobalMinCutFindsBridgeWeight(t *testing.T) {
	g, _ := buildBridgedTriangles()
	result, err := mincut.GlobalMinCut(g, unitWeight)
	require.NoError(t, err)
	require.Equal(t, 1.0, result.Weight)
}

func TestGlobalMinCutPartitionSeparatesOneTriangle(t *testing.T) {
	g, ids := buildBridgedTriangles()
	result, err := mincut.GlobalMinCut(g, unitWeight)
	require.NoError(t, err)
	require.Len(t, result.Partition, 3)

	side := make(map[graph.NodeID]bool, len(result.Partition))
	for _, id := range result.Partition {
		side[id] = true
	}

	triangleOne := side[ids["a"]] && side[ids["b"]] && side[ids["c"]]
	triangleTwo := side[ids["d"]] && side[ids["e"]] && side[ids["f"]]
	require.True(t, triangleOne || triangleTwo)
}

func TestGlobalMinCutOnCompleteGraphEqualsDegree(t *testing.T) {
	g := simple.New()
	ids := make([]graph.NodeID, 4)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			g.AddEdge(ids[i], ids[j], nil)
		}
	}

	// every node has degree 3 in K4, so isolating any single node costs 3,
	// the minimum possible cut.
	result, err := mincut.GlobalMinCut(g, unitWeight)
	require.NoError(t, err)
	require.Equal(t, 3.0, result.Weight)
}

func TestGlobalMinCutOnGeneratedCompleteGraphEqualsDegree(t *testing.T) {
	g := simple.New()
	ids, err := gen.Complete(g, 6)
	require.NoError(t, err)

	result, err := mincut.GlobalMinCut(g, unitWeight)
	require.NoError(t, err)
	require.Equal(t, float64(len(ids)-1), result.Weight)
}

func TestGlobalMinCutRejectsSingleNode(t *testing.T) {
	g := simple.New()
	g.AddNode(nil)

	_, err := mincut.GlobalMinCut(g, unitWeight)
	require.ErrorIs(t, err, mincut.ErrTooFewNodes)
}
