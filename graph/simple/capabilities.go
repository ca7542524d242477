package simple

import (
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/visitmap"
)

// NumNodes reports the number of live nodes. Complexity: O(1).
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// NumEdges reports the number of live edges. Complexity: O(1).
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// IsDirected reports the Graph's directedness.
func (g *Graph) IsDirected() bool { return g.directed }

// Node returns the Node for id, or nil if it does not exist.
func (g *Graph) Node(id graph.NodeID) graph.Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil
	}
	return graph.NewNode(id)
}

// Nodes iterates every node in dense-index order, which is insertion order
// until a RemoveNode moves the last node into the freed index.
func (g *Graph) Nodes() graph.Nodes {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]graph.Node, len(g.order))
	for i, id := range g.order {
		out[i] = graph.NewNode(id)
	}
	return graph.NewNodeSlice(out)
}

// NodeWeight returns the weight associated with id, if any.
func (g *Graph) NodeWeight(id graph.NodeID) (interface{}, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	return n.weight, true
}

func (g *Graph) edgeToGraphEdge(e *edgeEntry) graph.Edge {
	return edgeHandle{g: g, id: e.id, from: e.from, to: e.to}
}

// edgeHandle is the graph.WeightedEdge returned by iteration; Weight()
// looks the current weight up live rather than freezing it at iteration time.
type edgeHandle struct {
	g        *Graph
	id       graph.EdgeID
	from, to graph.NodeID
}

func (e edgeHandle) ID() graph.EdgeID { return e.id }
func (e edgeHandle) From() graph.NodeID { return e.from }
func (e edgeHandle) To() graph.NodeID   { return e.to }
func (e edgeHandle) Weight() float64 {
	w, _ := e.g.EdgeWeight(e.id)
	f, _ := w.(float64)
	return f
}

// Edges iterates every edge in the graph, in insertion order.
func (g *Graph) Edges() graph.Edges {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]graph.Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edgeToGraphEdge(g.edges[eid]))
	}
	return graph.NewEdgeSlice(out)
}

// EdgeWeight returns the weight associated with id, if any.
func (g *Graph) EdgeWeight(id graph.EdgeID) (interface{}, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, false
	}
	return e.weight, true
}

// EdgeBetween returns an edge between u and v, if one exists.
func (g *Graph) EdgeBetween(u, v graph.NodeID) (graph.Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.findEdgeLocked(u, v)
	if !ok {
		return nil, false
	}
	return g.edgeToGraphEdge(g.edges[id]), true
}

// Neighbors iterates the neighbors of id. For directed graphs this returns
// successors only (NeighborsDirected(id, Outgoing)); callers that want
// predecessors too should call NeighborsDirected directly.
func (g *Graph) Neighbors(id graph.NodeID) graph.Nodes {
	return g.NeighborsDirected(id, graph.Outgoing)
}

// NeighborsDirected iterates the neighbors of id restricted to dir.
// Undirected graphs ignore dir. Complexity: O(deg(id)).
func (g *Graph) NeighborsDirected(id graph.NodeID, dir graph.Direction) graph.Nodes {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var list []graph.EdgeID
	if !g.directed || dir == graph.Outgoing {
		list = g.out[id]
	} else {
		list = g.in[id]
	}

	out := make([]graph.Node, 0, len(list))
	for _, eid := range list {
		e := g.edges[eid]
		other := e.to
		if g.directed {
			if dir == graph.Incoming {
				other = e.from
			}
		} else if e.from == id {
			other = e.to
		} else {
			other = e.from
		}
		out = append(out, graph.NewNode(other))
	}
	return graph.NewNodeSlice(out)
}

// EdgesOf iterates the edges incident to id, without regard to direction.
func (g *Graph) EdgesOf(id graph.NodeID) graph.Edges {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := append([]graph.EdgeID(nil), g.out[id]...)
	if g.directed {
		list = append(list, g.in[id]...)
	}
	out := make([]graph.Edge, 0, len(list))
	for _, eid := range list {
		out = append(out, g.edgeToGraphEdge(g.edges[eid]))
	}
	return graph.NewEdgeSlice(out)
}

// EdgesDirected iterates the edges incident to id restricted to dir.
func (g *Graph) EdgesDirected(id graph.NodeID, dir graph.Direction) graph.Edges {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var list []graph.EdgeID
	if !g.directed || dir == graph.Outgoing {
		list = g.out[id]
	} else {
		list = g.in[id]
	}
	out := make([]graph.Edge, 0, len(list))
	for _, eid := range list {
		out = append(out, g.edgeToGraphEdge(g.edges[eid]))
	}
	return graph.NewEdgeSlice(out)
}

// ToIndex maps id to its current dense index. Complexity: O(1).
func (g *Graph) ToIndex(id graph.NodeID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pos[id]
}

// FromIndex maps a dense index back to a NodeID.
func (g *Graph) FromIndex(i int) (graph.NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.order) {
		return 0, false
	}
	return g.order[i], true
}

// NodeBound equals NumNodes: Graph never retains holes in its index space.
func (g *Graph) NodeBound() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

// NewVisitMap returns a dense, compact-indexed visit map for this graph.
func (g *Graph) NewVisitMap() graph.VisitMap {
	return visitmap.NewDense(g)
}

// adjacencyWitness is a dense NumNodes x NumNodes boolean matrix snapshot.
type adjacencyWitness struct {
	bound int
	idx   func(graph.NodeID) int
	adj   [][]bool
}

func (w *adjacencyWitness) IsAdjacent(u, v graph.NodeID) bool {
	iu, iv := w.idx(u), w.idx(v)
	if iu < 0 || iu >= w.bound || iv < 0 || iv >= w.bound {
		return false
	}
	return w.adj[iu][iv]
}

// AdjacencyMatrix produces a snapshot adjacency witness consistent with the
// edge iteration of the Graph at the time of the call.
func (g *Graph) AdjacencyMatrix() graph.AdjacencyWitness {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.order)
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.edges {
		iu, iv := g.pos[e.from], g.pos[e.to]
		adj[iu][iv] = true
		if !g.directed {
			adj[iv][iu] = true
		}
	}
	pos := make(map[graph.NodeID]int, len(g.pos))
	for id, i := range g.pos {
		pos[id] = i
	}
	return &adjacencyWitness{
		bound: n,
		idx: func(id graph.NodeID) int {
			i, ok := pos[id]
			if !ok {
				return -1
			}
			return i
		},
		adj: adj,
	}
}
