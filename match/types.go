package match

import "github.com/vertigraph/vertigraph/graph"

// Graph is the capability conjunction every matching algorithm in this
// package needs on an undirected input: dense indexing to back scratch
// arrays, node enumeration to find unmatched vertices, and neighbor
// iteration to discover candidate edges.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.Neighbors
}

// Matching is the result of a matching algorithm: a set of vertex-disjoint
// edges, each endpoint matched to at most one partner.
type Matching struct {
	mate map[graph.NodeID]graph.NodeID
}

func newMatching() *Matching {
	return &Matching{mate: make(map[graph.NodeID]graph.NodeID)}
}

func (m *Matching) pair(u, v graph.NodeID) {
	m.mate[u] = v
	m.mate[v] = u
}

// MateOf returns the partner id matches to, if any.
func (m *Matching) MateOf(id graph.NodeID) (graph.NodeID, bool) {
	v, ok := m.mate[id]
	return v, ok
}

// Len reports the number of matched edges.
func (m *Matching) Len() int {
	return len(m.mate) / 2
}

// Nodes returns every matched node, in no particular order.
func (m *Matching) Nodes() []graph.NodeID {
	out := make([]graph.NodeID, 0, len(m.mate))
	for id := range m.mate {
		out = append(out, id)
	}
	return out
}

// Edges returns every matched pair exactly once, deduplicated against the
// reverse pair; neither the order of pairs nor which endpoint comes first
// is defined.
func (m *Matching) Edges() [][2]graph.NodeID {
	seen := make(map[graph.NodeID]bool, len(m.mate))
	out := make([][2]graph.NodeID, 0, len(m.mate)/2)
	for u, v := range m.mate {
		if seen[u] || seen[v] {
			continue
		}
		seen[u] = true
		seen[v] = true
		out = append(out, [2]graph.NodeID{u, v})
	}
	return out
}

// IsPerfect reports whether every one of totalNodes nodes is matched.
func (m *Matching) IsPerfect(totalNodes int) bool {
	return len(m.mate) == totalNodes
}
