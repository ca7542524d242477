package graph

// FullGraph bundles every capability a filtered view might need to forward.
// NodeFiltered/EdgeFiltered embed it so unrelated capabilities pass through
// unchanged; node and edge counts are recomputed by the view whose filter
// changes them.
type FullGraph interface {
	EdgeCount
	NodeIdentifiers
	EdgeReferences
	Neighbors
	NeighborsDirected
	EdgesOfNode
	EdgesDirected
	GraphProp
	NodeIndexable
	Visitable
	AdjacencyMatrix
	DataMap
}

// NodePredicate reports whether a node should be visible through a filter.
type NodePredicate func(id NodeID) bool

// EdgePredicate reports whether an edge should be visible through a filter.
type EdgePredicate func(e Edge) bool

// NodeFiltered hides every node the predicate rejects, and transitively
// every edge incident to a hidden node. Iteration never yields a hidden
// endpoint, even via Edges(u) of a visible u.
type NodeFiltered struct {
	FullGraph
	Keep NodePredicate
}

// NewNodeFiltered builds a NodeFiltered view of g.
func NewNodeFiltered(g FullGraph, keep NodePredicate) *NodeFiltered {
	return &NodeFiltered{FullGraph: g, Keep: keep}
}

func (f *NodeFiltered) NumNodes() int {
	n := 0
	nodes := f.FullGraph.Nodes()
	for nodes.Next() {
		if f.Keep(nodes.Node().ID()) {
			n++
		}
	}
	return n
}

func (f *NodeFiltered) NumEdges() int {
	return len(EdgesOf(f.Edges()))
}

func (f *NodeFiltered) Nodes() Nodes {
	all := NodesOf(f.FullGraph.Nodes())
	out := make([]Node, 0, len(all))
	for _, n := range all {
		if f.Keep(n.ID()) {
			out = append(out, n)
		}
	}
	return NewNodeSlice(out)
}

func (f *NodeFiltered) Neighbors(id NodeID) Nodes {
	if !f.Keep(id) {
		return NoNodes
	}
	return f.filterNodes(f.FullGraph.Neighbors(id))
}

func (f *NodeFiltered) NeighborsDirected(id NodeID, dir Direction) Nodes {
	if !f.Keep(id) {
		return NoNodes
	}
	return f.filterNodes(f.FullGraph.NeighborsDirected(id, dir))
}

func (f *NodeFiltered) filterNodes(it Nodes) Nodes {
	all := NodesOf(it)
	out := make([]Node, 0, len(all))
	for _, n := range all {
		if f.Keep(n.ID()) {
			out = append(out, n)
		}
	}
	return NewNodeSlice(out)
}

func (f *NodeFiltered) EdgesOf(id NodeID) Edges {
	if !f.Keep(id) {
		return NoEdges
	}
	return f.filterEdges(f.FullGraph.EdgesOf(id))
}

func (f *NodeFiltered) EdgesDirected(id NodeID, dir Direction) Edges {
	if !f.Keep(id) {
		return NoEdges
	}
	return f.filterEdges(f.FullGraph.EdgesDirected(id, dir))
}

func (f *NodeFiltered) Edges() Edges {
	return f.filterEdges(f.FullGraph.Edges())
}

func (f *NodeFiltered) filterEdges(it Edges) Edges {
	all := EdgesOf(it)
	out := make([]Edge, 0, len(all))
	for _, e := range all {
		if f.Keep(e.From()) && f.Keep(e.To()) {
			out = append(out, e)
		}
	}
	return NewEdgeSlice(out)
}

// EdgeFiltered hides every edge the predicate rejects; nodes remain visible
// even if they end up with no incident edges.
type EdgeFiltered struct {
	FullGraph
	Keep EdgePredicate
}

// NewEdgeFiltered builds an EdgeFiltered view of g.
func NewEdgeFiltered(g FullGraph, keep EdgePredicate) *EdgeFiltered {
	return &EdgeFiltered{FullGraph: g, Keep: keep}
}

func (f *EdgeFiltered) NumEdges() int {
	n := 0
	edges := f.FullGraph.Edges()
	for edges.Next() {
		if f.Keep(edges.Edge()) {
			n++
		}
	}
	return n
}

func (f *EdgeFiltered) Edges() Edges {
	return f.filterEdges(f.FullGraph.Edges())
}

func (f *EdgeFiltered) filterEdges(it Edges) Edges {
	all := EdgesOf(it)
	out := make([]Edge, 0, len(all))
	for _, e := range all {
		if f.Keep(e) {
			out = append(out, e)
		}
	}
	return NewEdgeSlice(out)
}

func (f *EdgeFiltered) EdgesOf(id NodeID) Edges {
	return f.filterEdges(f.FullGraph.EdgesOf(id))
}

func (f *EdgeFiltered) EdgesDirected(id NodeID, dir Direction) Edges {
	return f.filterEdges(f.FullGraph.EdgesDirected(id, dir))
}

func (f *EdgeFiltered) Neighbors(id NodeID) Nodes {
	edges := EdgesOf(f.EdgesOf(id))
	out := make([]Node, 0, len(edges))
	for _, e := range edges {
		if e.From() == id {
			out = append(out, NewNode(e.To()))
		} else {
			out = append(out, NewNode(e.From()))
		}
	}
	return NewNodeSlice(out)
}

func (f *EdgeFiltered) NeighborsDirected(id NodeID, dir Direction) Nodes {
	edges := EdgesOf(f.EdgesDirected(id, dir))
	out := make([]Node, 0, len(edges))
	for _, e := range edges {
		if dir == Outgoing {
			out = append(out, NewNode(e.To()))
		} else {
			out = append(out, NewNode(e.From()))
		}
	}
	return NewNodeSlice(out)
}
