package iso

import "github.com/vertigraph/vertigraph/graph"

type vf2State struct {
	g0, g1       Graph
	n0, n1       int
	core0, core1 []int // core0[i] = j means g0-index i maps to g1-index j, -1 if unmapped
	edgeOK       func(i0, j0, i1, j1 int) bool
}

func newVf2State(g0, g1 Graph) *vf2State {
	n0, n1 := g0.NumNodes(), g1.NumNodes()
	s := &vf2State{g0: g0, g1: g1, n0: n0, n1: n1, core0: make([]int, n0), core1: make([]int, n1)}
	for i := range s.core0 {
		s.core0[i] = -1
	}
	for i := range s.core1 {
		s.core1[i] = -1
	}
	return s
}

func (s *vf2State) isAdjacent(g Graph, idx0, idx1 int, directed bool) bool {
	a, _ := g.FromIndex(idx0)
	b, _ := g.FromIndex(idx1)
	wit := g.AdjacencyMatrix()
	if wit.IsAdjacent(a, b) {
		return true
	}
	if directed {
		return false
	}
	return wit.IsAdjacent(b, a)
}

// feasible reports whether mapping g0-index i0 to g1-index i1 is
// consistent with every pair already in the partial mapping: for every
// already-mapped g0 node j0, the adjacency between i0 and j0 in g0 must
// match the adjacency between i1 and core0[j0] in g1, in both directions
// when the graphs are directed. With subgraph set, an edge of g1 that g0
// lacks is allowed; a g0 edge missing from g1 still fails.
func (s *vf2State) feasible(i0, i1 int, subgraph bool) bool {
	directed := s.g0.IsDirected()
	for j0 := 0; j0 < s.n0; j0++ {
		j1 := s.core0[j0]
		if j1 < 0 {
			continue
		}
		adj0 := s.isAdjacent(s.g0, i0, j0, directed)
		if adj0 != s.isAdjacent(s.g1, i1, j1, directed) && (adj0 || !subgraph) {
			return false
		}
		if adj0 && s.edgeOK != nil && !s.edgeOK(i0, j0, i1, j1) {
			return false
		}
		if directed {
			adj1 := s.isAdjacent(s.g0, j0, i0, directed)
			if adj1 != s.isAdjacent(s.g1, j1, i1, directed) && (adj1 || !subgraph) {
				return false
			}
			if adj1 && s.edgeOK != nil && !s.edgeOK(j0, i0, j1, i1) {
				return false
			}
		}
	}
	return true
}

func (s *vf2State) nextUnmapped() int {
	for i := 0; i < s.n0; i++ {
		if s.core0[i] < 0 {
			return i
		}
	}
	return -1
}

// tryMatch performs the VF2 backtracking search. nodeMatch/edgeMatch may
// be nil for pure structural matching. subgraph, when true, only
// requires n0 <= n1 and leaves g1's unmapped nodes/extra edges alone
// (monomorphism rather than exact isomorphism).
func (s *vf2State) tryMatch(nodeMatch NodeMatch, weightOf0, weightOf1 func(idx int) (interface{}, bool), subgraph bool) bool {
	i0 := s.nextUnmapped()
	if i0 < 0 {
		return true
	}
	for i1 := 0; i1 < s.n1; i1++ {
		if s.core1[i1] >= 0 {
			continue
		}
		if !subgraph && degree(s.g0, mustID(s.g0, i0)) != degree(s.g1, mustID(s.g1, i1)) {
			continue
		}
		if !s.feasible(i0, i1, subgraph) {
			continue
		}
		if nodeMatch != nil {
			w0, _ := weightOf0(i0)
			w1, _ := weightOf1(i1)
			if !nodeMatch(w0, w1) {
				continue
			}
		}
		s.core0[i0] = i1
		s.core1[i1] = i0
		if s.tryMatch(nodeMatch, weightOf0, weightOf1, subgraph) {
			return true
		}
		s.core0[i0] = -1
		s.core1[i1] = -1
	}
	return false
}

func mustID(g Graph, idx int) graph.NodeID {
	id, _ := g.FromIndex(idx)
	return id
}

// IsIsomorphic reports whether g0 and g1 are isomorphic, comparing
// structure only.
func IsIsomorphic(g0, g1 Graph) bool {
	if g0.NumNodes() != g1.NumNodes() || g0.NumEdges() != g1.NumEdges() {
		return false
	}
	if g0.IsDirected() != g1.IsDirected() {
		return false
	}
	s := newVf2State(g0, g1)
	return s.tryMatch(nil, nil, nil, false)
}

// MatchingGraph adds weight lookup to Graph, needed for semantic
// node/edge matching.
type MatchingGraph interface {
	Graph
	graph.DataMap
	graph.EdgeReferences
}

func edgeWeightIndex(g MatchingGraph) map[[2]graph.NodeID]interface{} {
	idx := make(map[[2]graph.NodeID]interface{})
	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		w, _ := g.EdgeWeight(e.ID())
		idx[[2]graph.NodeID{e.From(), e.To()}] = w
	}
	return idx
}

// IsIsomorphicMatching reports whether g0 and g1 are isomorphic under
// both structural and semantic (node_match, edge_match) constraints.
func IsIsomorphicMatching(g0, g1 MatchingGraph, nodeMatch NodeMatch, edgeMatch EdgeMatch) bool {
	if g0.NumNodes() != g1.NumNodes() || g0.NumEdges() != g1.NumEdges() {
		return false
	}
	if g0.IsDirected() != g1.IsDirected() {
		return false
	}
	s := newVf2State(g0, g1)
	weightOf0 := func(idx int) (interface{}, bool) { return g0.NodeWeight(mustID(g0, idx)) }
	weightOf1 := func(idx int) (interface{}, bool) { return g1.NodeWeight(mustID(g1, idx)) }

	if edgeMatch != nil {
		idx0 := edgeWeightIndex(g0)
		idx1 := edgeWeightIndex(g1)
		s.edgeOK = func(i0, j0, i1, j1 int) bool {
			a0, b0 := mustID(g0, i0), mustID(g0, j0)
			a1, b1 := mustID(g1, i1), mustID(g1, j1)
			w0, ok0 := idx0[[2]graph.NodeID{a0, b0}]
			if !ok0 {
				w0, ok0 = idx0[[2]graph.NodeID{b0, a0}]
			}
			w1, ok1 := idx1[[2]graph.NodeID{a1, b1}]
			if !ok1 {
				w1, ok1 = idx1[[2]graph.NodeID{b1, a1}]
			}
			if !ok0 || !ok1 {
				return true
			}
			return edgeMatch(w0, w1)
		}
	}

	return s.tryMatch(nodeMatch, weightOf0, weightOf1, false)
}

// IsIsomorphicSubgraph reports whether g0 is isomorphic to some subgraph
// of g1 in the monomorphism sense: g1 may carry additional edges between
// mapped nodes that g0 lacks, but never fewer. See doc.go.
func IsIsomorphicSubgraph(g0, g1 Graph) bool {
	if g0.NumNodes() > g1.NumNodes() {
		return false
	}
	if g0.IsDirected() != g1.IsDirected() {
		return false
	}
	s := newVf2State(g0, g1)
	return s.tryMatch(nil, nil, nil, true)
}
