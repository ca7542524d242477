package clique_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertigraph/vertigraph/clique"
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

// buildBowtie builds two triangles sharing one vertex: {a,b,c} and {c,d,e}.
func buildBowtie() (*simple.Graph, graph.NodeID, graph.NodeID, graph.NodeID, graph.NodeID, graph.NodeID) {
	g := simple.New()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	e := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(d, e, nil)
	g.AddEdge(e, c, nil)
	return g, a, b, c, d, e
}

func TestMaximalCliquesFindsBothTriangles(t *testing.T) {
	g, _, _, _, _, _ := buildBowtie()
	cliques := clique.MaximalCliques(g)

	var sizeThree int
	for _, c := range cliques {
		if len(c) == 3 {
			sizeThree++
		}
	}
	require.Equal(t, 2, sizeThree)
}

func TestLargestCliqueFindsSizeThree(t *testing.T) {
	g, _, _, _, _, _ := buildBowtie()
	best := clique.LargestClique(g)
	require.Len(t, best, 3)
}

func TestLargestCliqueOnCompleteGraph(t *testing.T) {
	g := simple.New()
	ids := make([]graph.NodeID, 5)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			g.AddEdge(ids[i], ids[j], nil)
		}
	}
	best := clique.LargestClique(g)
	require.Len(t, best, 5)
}
