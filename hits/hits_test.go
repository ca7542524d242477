package hits_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/hits"
)

// buildHubAuthority builds a small graph with one clear hub (links to
// every authority) and one clear authority (linked from every hub).
func buildHubAuthority() (g *simple.Graph, hub, authority graph.NodeID) {
	g = simple.New(simple.Directed())
	hub = g.AddNode(nil)
	authority = g.AddNode(nil)
	other := g.AddNode(nil)
	g.AddEdge(hub, authority, nil)
	g.AddEdge(hub, other, nil)
	g.AddEdge(other, authority, nil)
	return g, hub, authority
}

func l2Norm(scores map[graph.NodeID]float64) float64 {
	sum := 0.0
	for _, v := range scores {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func TestHITSNormalizesVectors(t *testing.T) {
	g, _, _ := buildHubAuthority()
	res := hits.HITS(g)
	require.True(t, res.Converged)
	require.InDelta(t, 1.0, l2Norm(res.Hub), 1e-4)
	require.InDelta(t, 1.0, l2Norm(res.Authority), 1e-4)
}

func TestHITSRanksHubAboveLeaf(t *testing.T) {
	g, hub, _ := buildHubAuthority()
	res := hits.HITS(g)

	for id, score := range res.Hub {
		if id != hub {
			require.Less(t, score, res.Hub[hub])
		}
	}
}

func TestHITSRanksAuthorityAboveLeaf(t *testing.T) {
	g, _, authority := buildHubAuthority()
	res := hits.HITS(g)

	for id, score := range res.Authority {
		if id != authority {
			require.Less(t, score, res.Authority[authority])
		}
	}
}

func TestParallelHITSMatchesSequential(t *testing.T) {
	g, _, _ := buildHubAuthority()
	seq := hits.HITS(g)
	par, err := hits.ParallelHITS(context.Background(), g)
	require.NoError(t, err)

	for id := range seq.Hub {
		require.InDelta(t, seq.Hub[id], par.Hub[id], 1e-6)
		require.InDelta(t, seq.Authority[id], par.Authority[id], 1e-6)
	}
}
