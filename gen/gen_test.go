package gen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/gen"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

func degreeOf(g *simple.Graph, id graph.NodeID) int {
	count := 0
	it := g.Edges()
	for it.Next() {
		e := it.Edge()
		if e.From() == id || e.To() == id {
			count++
		}
	}
	return count
}

func TestCycleProducesRingOfUniformDegreeTwo(t *testing.T) {
	g := simple.New()
	ids, err := gen.Cycle(g, 5)
	require.NoError(t, err)
	require.Len(t, ids, 5)
	for _, id := range ids {
		require.Equal(t, 2, degreeOf(g, id))
	}
}

func TestCycleRejectsTooFewNodes(t *testing.T) {
	g := simple.New()
	_, err := gen.Cycle(g, 2)
	require.ErrorIs(t, err, gen.ErrTooFewNodes)
}

func TestPathEndpointsHaveDegreeOne(t *testing.T) {
	g := simple.New()
	ids, err := gen.Path(g, 4)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	require.Equal(t, 1, degreeOf(g, ids[0]))
	require.Equal(t, 1, degreeOf(g, ids[3]))
	require.Equal(t, 2, degreeOf(g, ids[1]))
	require.Equal(t, 2, degreeOf(g, ids[2]))
}

func TestStarHubHasDegreeEqualToLeafCount(t *testing.T) {
	g := simple.New()
	ids, err := gen.Star(g, 5)
	require.NoError(t, err)
	require.Len(t, ids, 5)
	hub := ids[0]
	require.Equal(t, 4, degreeOf(g, hub))
	for _, leaf := range ids[1:] {
		require.Equal(t, 1, degreeOf(g, leaf))
	}
}

func TestStarOnDirectedGraphMirrorsSpokes(t *testing.T) {
	g := simple.New(simple.Directed())
	ids, err := gen.Star(g, 3)
	require.NoError(t, err)
	hub := ids[0]
	require.Equal(t, 4, degreeOf(g, hub)) // 2 leaves, each contributing an in and an out edge
}

func TestWheelHubConnectsToEveryRingNode(t *testing.T) {
	g := simple.New()
	ids, err := gen.Wheel(g, 6)
	require.NoError(t, err)
	require.Len(t, ids, 6)
	hub := ids[0]
	require.Equal(t, 5, degreeOf(g, hub))
	for _, rim := range ids[1:] {
		require.Equal(t, 3, degreeOf(g, rim)) // 2 ring neighbors + hub spoke
	}
}

func TestWheelRejectsTooFewNodes(t *testing.T) {
	g := simple.New()
	_, err := gen.Wheel(g, 3)
	require.ErrorIs(t, err, gen.ErrTooFewNodes)
}

func TestWheelSharesASingleSeededStreamBetweenRingAndHub(t *testing.T) {
	// The ring and the hub spokes must draw from one continuous resolved
	// stream: replaying the same seed through a plain rand.Rand, in the
	// exact order Wheel consumes it (n-1 ring weights, then n-1 spoke
	// weights), must reproduce every sampled weight exactly.
	const n = 6
	seed := int64(11)

	reference := rand.New(rand.NewSource(seed))
	var wantWeights []float64
	for i := 0; i < 2*(n-1); i++ {
		wantWeights = append(wantWeights, reference.Float64())
	}

	var gotWeights []float64
	record := func(r *rand.Rand) float64 {
		w := r.Float64()
		gotWeights = append(gotWeights, w)
		return w
	}

	g := simple.New()
	_, err := gen.Wheel(g, n, gen.WithSeed(seed), gen.WithWeight(record))
	require.NoError(t, err)
	require.Equal(t, wantWeights, gotWeights)
}

func TestCompleteConnectsEveryPair(t *testing.T) {
	g := simple.New()
	ids, err := gen.Complete(g, 4)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	for _, id := range ids {
		require.Equal(t, 3, degreeOf(g, id))
	}
}

func TestCompleteBipartitePartitionDegrees(t *testing.T) {
	g := simple.New()
	left, right, err := gen.CompleteBipartite(g, 2, 3)
	require.NoError(t, err)
	require.Len(t, left, 2)
	require.Len(t, right, 3)
	for _, id := range left {
		require.Equal(t, 3, degreeOf(g, id))
	}
	for _, id := range right {
		require.Equal(t, 2, degreeOf(g, id))
	}
}

func TestGridInteriorAndCornerDegrees(t *testing.T) {
	g := simple.New()
	nodes, err := gen.Grid(g, 3, 3)
	require.NoError(t, err)
	require.Equal(t, 2, degreeOf(g, nodes[0][0])) // corner
	require.Equal(t, 4, degreeOf(g, nodes[1][1])) // interior
}

func TestRandomSparseWithProbabilityOneProducesCompleteGraph(t *testing.T) {
	g := simple.New()
	ids, err := gen.RandomSparse(g, 4, 1.0)
	require.NoError(t, err)
	for _, id := range ids {
		require.Equal(t, 3, degreeOf(g, id))
	}
}

func TestRandomSparseWithProbabilityZeroProducesNoEdges(t *testing.T) {
	g := simple.New()
	ids, err := gen.RandomSparse(g, 4, 0.0)
	require.NoError(t, err)
	for _, id := range ids {
		require.Equal(t, 0, degreeOf(g, id))
	}
}

func TestRandomSparseRejectsInvalidProbability(t *testing.T) {
	g := simple.New()
	_, err := gen.RandomSparse(g, 4, 1.5)
	require.ErrorIs(t, err, gen.ErrInvalidProbability)
}

func TestRandomSparseRequiresRandSourceForFractionalProbability(t *testing.T) {
	g := simple.New()
	_, err := gen.RandomSparse(g, 4, 0.5)
	require.ErrorIs(t, err, gen.ErrNeedRandSource)
}

func TestRandomRegularProducesUniformDegree(t *testing.T) {
	g := simple.New()
	ids, err := gen.RandomRegular(g, 6, 3, gen.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, ids, 6)
	for _, id := range ids {
		require.Equal(t, 3, degreeOf(g, id))
	}
}

func TestRandomRegularRejectsOddStubCount(t *testing.T) {
	g := simple.New()
	_, err := gen.RandomRegular(g, 5, 3, gen.WithSeed(1))
	require.ErrorIs(t, err, gen.ErrTooFewNodes)
}

func TestRandomRegularRejectsDirectedGraph(t *testing.T) {
	g := simple.New(simple.Directed())
	_, err := gen.RandomRegular(g, 4, 2, gen.WithSeed(1))
	require.ErrorIs(t, err, gen.ErrUnsupportedGraphMode)
}

func TestRandomRegularRequiresRandSource(t *testing.T) {
	g := simple.New()
	_, err := gen.RandomRegular(g, 4, 2)
	require.ErrorIs(t, err, gen.ErrNeedRandSource)
}
