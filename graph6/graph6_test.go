package graph6_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
	"github.com/vertigraph/vertigraph/graph6"
)

// adjacentPairs reports every adjacent pair of g's nodes, by position
// in g.Nodes() order, as a set of {row,col} keys with row<col — the
// shape graph6 itself preserves across a round trip.
func adjacentPairs(t *testing.T, g *simple.Graph) map[[2]int]bool {
	t.Helper()
	nodes := graph.NodesOf(g.Nodes())
	witness := g.AdjacencyMatrix()
	pairs := make(map[[2]int]bool)
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if witness.IsAdjacent(nodes[i].ID(), nodes[j].ID()) {
				pairs[[2]int{i, j}] = true
			}
		}
	}
	return pairs
}

func TestEncodeDecodeRoundTripsTriangle(t *testing.T) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)

	encoded, err := graph6.Encode(g)
	require.NoError(t, err)

	decoded, err := graph6.Decode(encoded)
	require.NoError(t, err)
	require.Len(t, graph.NodesOf(decoded.Nodes()), 3)
	require.Equal(t, adjacentPairs(t, g), adjacentPairs(t, decoded))
}

func TestEncodeEmptyGraphUsesSingleCharacterOrder(t *testing.T) {
	g := simple.New()
	for i := 0; i < 4; i++ {
		g.AddNode(nil)
	}
	encoded, err := graph6.Encode(g)
	require.NoError(t, err)
	// order 4 fits the single 6-bit form: one order byte, then the
	// 4*3/2 = 6 adjacency bits (all zero) packed into one more byte.
	require.Len(t, encoded, 2)
}

func TestEncodeDecodeRoundTripsFourNodePath(t *testing.T) {
	g := simple.New()
	n0 := g.AddNode(nil)
	n1 := g.AddNode(nil)
	n2 := g.AddNode(nil)
	n3 := g.AddNode(nil)
	g.AddEdge(n0, n1, nil)
	g.AddEdge(n1, n2, nil)
	g.AddEdge(n2, n3, nil)

	encoded, err := graph6.Encode(g)
	require.NoError(t, err)

	decoded, err := graph6.Decode(encoded)
	require.NoError(t, err)
	require.Len(t, graph.NodesOf(decoded.Nodes()), 4)
	require.Equal(t, adjacentPairs(t, g), adjacentPairs(t, decoded))
}

func TestDecodeRejectsEmptyString(t *testing.T) {
	_, err := graph6.Decode("")
	require.ErrorIs(t, err, graph6.ErrInvalidEncoding)
}

func TestDecodeRejectsTruncatedMatrix(t *testing.T) {
	// order 4 needs 6 adjacency bits (one packed byte); this claims
	// order 10 but supplies only one matrix byte.
	_, err := graph6.Decode(string([]byte{byte(10 + 63), byte(63)}))
	require.ErrorIs(t, err, graph6.ErrInvalidEncoding)
}
