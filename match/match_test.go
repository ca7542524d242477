package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/gen"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/match"
)

func TestGreedyMatchingPairsDisjointEdges(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(c, d, nil)

	m := match.GreedyMatching(g)
	require.Equal(t, 2, m.Len())
	require.True(t, m.IsPerfect(4))
}

// buildOddCycle returns a 5-cycle, which has no perfect matching but whose
// maximum matching has size 2 and requires blossom contraction to find
// since a naive augmenting-path search without shrinking can get stuck.
func buildOddCycle() (*simple.Graph, []graph.NodeID) {
	g := simple.New()
	ids := make([]graph.NodeID, 5)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}
	for i := 0; i < 5; i++ {
		g.AddEdge(ids[i], ids[(i+1)%5], nil)
	}
	return g, ids
}

func TestMaximumMatchingHandlesOddCycle(t *testing.T) {
	g, _ := buildOddCycle()
	m := match.MaximumMatching(g)
	require.Equal(t, 2, m.Len())
}

func TestMaximumMatchingFindsPerfectMatchingOnEvenCycle(t *testing.T) {
	g := simple.New()
	ids := make([]graph.NodeID, 6)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}
	for i := 0; i < 6; i++ {
		g.AddEdge(ids[i], ids[(i+1)%6], nil)
	}

	m := match.MaximumMatching(g)
	require.Equal(t, 3, m.Len())
	require.True(t, m.IsPerfect(6))
}

func TestBipartiteMatchingMaximizesCoverage(t *testing.T) {
	g := simple.New()
	l1 := g.AddNode(nil)
	l2 := g.AddNode(nil)
	r1 := g.AddNode(nil)
	r2 := g.AddNode(nil)
	g.AddEdge(l1, r1, nil)
	g.AddEdge(l1, r2, nil)
	g.AddEdge(l2, r1, nil)

	m := match.BipartiteMatching(g, []graph.NodeID{l1, l2})
	require.Equal(t, 2, m.Len())
	mate, ok := m.MateOf(l2)
	require.True(t, ok)
	require.Equal(t, r1, mate)
}

func TestBipartiteMatchingSaturatesSmallerSideOfCompleteBipartite(t *testing.T) {
	g := simple.New()
	left, right, err := gen.CompleteBipartite(g, 3, 5)
	require.NoError(t, err)

	m := match.BipartiteMatching(g, left)
	require.Equal(t, len(left), m.Len())
	for _, l := range left {
		mate, ok := m.MateOf(l)
		require.True(t, ok)
		require.Contains(t, right, mate)
	}
}
