package graph

// Nodes is a resettable node iterator. Algorithms that need to walk the
// same set of nodes more than once (grouped toposort, repeated BFS) call
// Reset instead of re-obtaining a fresh iterator, so a slice-backed
// implementation can be reused without reallocating.
type Nodes interface {
	// Next advances the iterator and reports whether a node is available.
	Next() bool
	// Node returns the current node. Valid only after a Next that returned true.
	Node() Node
	// Len returns the number of nodes remaining after the current one.
	Len() int
	// Reset rewinds the iterator to its initial position.
	Reset()
}

// Edges is a resettable edge iterator, the edge-valued counterpart of Nodes.
type Edges interface {
	Next() bool
	Edge() Edge
	Len() int
	Reset()
}

// NoNodes is the empty Nodes iterator.
var NoNodes Nodes = &nodeSlice{}

// NoEdges is the empty Edges iterator.
var NoEdges Edges = &edgeSlice{}

type nodeSlice struct {
	nodes []Node
	pos   int
}

// NewNodeSlice builds a Nodes iterator over an owned copy of nodes.
func NewNodeSlice(nodes []Node) Nodes {
	cp := make([]Node, len(nodes))
	copy(cp, nodes)
	return &nodeSlice{nodes: cp, pos: -1}
}

func (it *nodeSlice) Next() bool {
	if it.pos+1 >= len(it.nodes) {
		return false
	}
	it.pos++
	return true
}

func (it *nodeSlice) Node() Node {
	if it.pos < 0 || it.pos >= len(it.nodes) {
		return nil
	}
	return it.nodes[it.pos]
}

func (it *nodeSlice) Len() int {
	if it.pos < 0 {
		return len(it.nodes)
	}
	return len(it.nodes) - it.pos - 1
}

func (it *nodeSlice) Reset() { it.pos = -1 }

type edgeSlice struct {
	edges []Edge
	pos   int
}

// NewEdgeSlice builds an Edges iterator over an owned copy of edges.
func NewEdgeSlice(edges []Edge) Edges {
	cp := make([]Edge, len(edges))
	copy(cp, edges)
	return &edgeSlice{edges: cp, pos: -1}
}

func (it *edgeSlice) Next() bool {
	if it.pos+1 >= len(it.edges) {
		return false
	}
	it.pos++
	return true
}

func (it *edgeSlice) Edge() Edge {
	if it.pos < 0 || it.pos >= len(it.edges) {
		return nil
	}
	return it.edges[it.pos]
}

func (it *edgeSlice) Len() int {
	if it.pos < 0 {
		return len(it.edges)
	}
	return len(it.edges) - it.pos - 1
}

func (it *edgeSlice) Reset() { it.pos = -1 }

// NodesOf drains a Nodes iterator into a slice, leaving it exhausted.
func NodesOf(it Nodes) []Node {
	if it == nil {
		return nil
	}
	out := make([]Node, 0, it.Len())
	for it.Next() {
		out = append(out, it.Node())
	}
	return out
}

// EdgesOf drains an Edges iterator into a slice, leaving it exhausted.
func EdgesOf(it Edges) []Edge {
	if it == nil {
		return nil
	}
	out := make([]Edge, 0, it.Len())
	for it.Next() {
		out = append(out, it.Edge())
	}
	return out
}
