package pagerank_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/pagerank"
)

// buildRing builds a 4-node directed cycle a->b->c->d->a, whose stationary
// distribution is uniform by symmetry.
func buildRing() (*simple.Graph, []graph.NodeID) {
	g := simple.New(simple.Directed())
	ids := make([]graph.NodeID, 4)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}
	for i := range ids {
		g.AddEdge(ids[i], ids[(i+1)%len(ids)], nil)
	}
	return g, ids
}

func TestPageRankUniformOnSymmetricRing(t *testing.T) {
	g, ids := buildRing()
	res := pagerank.PageRank(g)

	require.True(t, res.Converged)
	expected := 1.0 / float64(len(ids))
	for _, id := range ids {
		require.InDelta(t, expected, res.Scores[id], 1e-4)
	}
}

func TestPageRankScoresSumToOne(t *testing.T) {
	g := simple.New(simple.Directed())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(a, c, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)

	res := pagerank.PageRank(g)
	sum := 0.0
	for _, score := range res.Scores {
		sum += score
	}
	require.InDelta(t, 1.0, sum, 1e-6)
}

func TestPageRankHandlesDanglingNode(t *testing.T) {
	g := simple.New(simple.Directed())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	// b has no outgoing edges: its rank mass must redistribute rather
	// than leak out of the total.

	res := pagerank.PageRank(g)
	sum := 0.0
	for _, score := range res.Scores {
		sum += score
	}
	require.InDelta(t, 1.0, sum, 1e-6)
}

func TestParallelPageRankMatchesSequential(t *testing.T) {
	g, ids := buildRing()
	seq := pagerank.PageRank(g)
	par, err := pagerank.ParallelPageRank(context.Background(), g)
	require.NoError(t, err)

	for _, id := range ids {
		require.InDelta(t, seq.Scores[id], par.Scores[id], 1e-6)
	}
}

func TestPageRankRespectsIterationCap(t *testing.T) {
	g, _ := buildRing()
	res := pagerank.PageRank(g, pagerank.WithMaxIterations(1), pagerank.WithTolerance(0))
	require.Equal(t, 1, res.Iterations)
	require.False(t, res.Converged)
}
