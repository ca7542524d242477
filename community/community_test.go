package community_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/community"
	"github.com/vertigraph/vertigraph/gerr"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

func lessNodeID(a, b graph.NodeID) bool { return a < b }

// lessNodeIDSlice orders community subsets by length then lexicographically
// by (already node-ID-sorted) contents, giving cmpopts.SortSlices a total
// order to canonicalize the outer partition slice against.
func lessNodeIDSlice(a, b []graph.NodeID) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func unitWeight(graph.Edge) float64 { return 1 }

// buildTwoCliques builds two dense triangles {a,b,c} and {d,e,f} joined by
// a single bridge edge c-d, so both modularity and Louvain should favor
// splitting the two triangles apart.
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

func TestModularityOfTrianglePartitionIsPositive(t *testing.T) {
	g, ids := buildTwoCliques()
	partition := [][]graph.NodeID{
		{ids["a"], ids["b"], ids["c"]},
		{ids["d"], ids["e"], ids["f"]},
	}

	q, err := community.Modularity(g, partition, unitWeight)
	require.NoError(t, err)
	require.Greater(t, q, 0.0)
}

func TestModularityOfSingletonPartitionIsNegative(t *testing.T) {
	g, ids := buildTwoCliques()
	partition := [][]graph.NodeID{
		{ids["a"]}, {ids["b"]}, {ids["c"]}, {ids["d"]}, {ids["e"]}, {ids["f"]},
	}

	q, err := community.Modularity(g, partition, unitWeight)
	require.NoError(t, err)
	require.Less(t, q, 0.0)
}

func TestModularityRejectsMissingNode(t *testing.T) {
	g, ids := buildTwoCliques()
	partition := [][]graph.NodeID{
		{ids["a"], ids["b"], ids["c"]},
		{ids["d"], ids["e"]}, // f omitted
	}

	_, err := community.Modularity(g, partition, unitWeight)
	require.Error(t, err)

	var notAPartition *gerr.NotAPartition
	require.True(t, errors.As(err, &notAPartition))
	require.Equal(t, []graph.NodeID{ids["f"]}, notAPartition.Missing)
}

func TestModularityRejectsDuplicatedNode(t *testing.T) {
	g, ids := buildTwoCliques()
	partition := [][]graph.NodeID{
		{ids["a"], ids["b"], ids["c"]},
		{ids["c"], ids["d"], ids["e"], ids["f"]}, // c duplicated
	}

	_, err := community.Modularity(g, partition, unitWeight)
	require.Error(t, err)

	var notAPartition *gerr.NotAPartition
	require.True(t, errors.As(err, &notAPartition))
	require.Equal(t, []graph.NodeID{ids["c"]}, notAPartition.Duplicated)
}

func TestLouvainSeparatesTwoCliques(t *testing.T) {
	g, ids := buildTwoCliques()
	partition, q := community.Louvain(g, unitWeight)

	require.Greater(t, q, 0.0)
	require.Len(t, partition, 2)

	sameCommunity := func(x, y graph.NodeID) bool {
		for _, subset := range partition {
			has := func(id graph.NodeID) bool {
				for _, n := range subset {
					if n == id {
						return true
					}
				}
				return false
			}
			if has(x) && has(y) {
				return true
			}
			if has(x) || has(y) {
				return false
			}
		}
		return false
	}

	require.True(t, sameCommunity(ids["a"], ids["b"]))
	require.True(t, sameCommunity(ids["b"], ids["c"]))
	require.True(t, sameCommunity(ids["d"], ids["e"]))
	require.True(t, sameCommunity(ids["e"], ids["f"]))
	require.False(t, sameCommunity(ids["a"], ids["d"]))
}

func TestLouvainPartitionMatchesExpectedGroupingUpToOrder(t *testing.T) {
	g, ids := buildTwoCliques()
	partition, _ := community.Louvain(g, unitWeight)

	want := [][]graph.NodeID{
		{ids["a"], ids["b"], ids["c"]},
		{ids["d"], ids["e"], ids["f"]},
	}

	diff := cmp.Diff(want, partition,
		cmpopts.SortSlices(lessNodeID),
		cmpopts.SortSlices(lessNodeIDSlice),
	)
	require.Empty(t, diff, "partition mismatch (-want +got):\n%s", diff)
}

func TestLouvainPartitionCoversEveryNodeExactlyOnce(t *testing.T) {
	g, ids := buildTwoCliques()
	partition, _ := community.Louvain(g, unitWeight)

	_, err := community.Modularity(g, partition, unitWeight)
	require.NoError(t, err)

	seen := make(map[graph.NodeID]bool)
	for _, subset := range partition {
		for _, id := range subset {
			seen[id] = true
		}
	}
	for _, id := range ids {
		require.True(t, seen[id])
	}
}
