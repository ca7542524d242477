package simple

import (
	"github.com/vertigraph/vertigraph/graph"
)

// AddNode inserts a fresh node and returns its managed identifier.
// Complexity: O(1) amortised.
func (g *Graph) AddNode(w interface{}) graph.NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextNode
	g.nextNode++
	g.nodes[id] = &nodeEntry{id: id, weight: w}
	g.pos[id] = len(g.order)
	g.order = append(g.order, id)

	return id
}

// RemoveNode deletes a node and every edge incident to it.
// Complexity: O(deg) for incident-edge removal plus O(1) for the swap-pop
// that keeps the index space dense.
func (g *Graph) RemoveNode(id graph.NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	for _, eid := range append([]graph.EdgeID(nil), g.out[id]...) {
		g.removeEdgeLocked(eid)
	}
	for _, eid := range append([]graph.EdgeID(nil), g.in[id]...) {
		g.removeEdgeLocked(eid)
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.nodes, id)

	i := g.pos[id]
	last := len(g.order) - 1
	g.order[i] = g.order[last]
	g.pos[g.order[i]] = i
	g.order = g.order[:last]
	delete(g.pos, id)

	return nil
}

// AddEdge inserts an edge from u to v with weight w, subject to the
// self-loop and multi-edge policy the Graph was constructed with.
// Complexity: O(1) amortised, O(deg(u)) when multi-edges are disallowed
// (must scan to reject a duplicate).
func (g *Graph) AddEdge(u, v graph.NodeID, w interface{}) graph.EdgeID {
	id, err := g.addEdge(u, v, w)
	if err != nil {
		return -1
	}
	return id
}

// TryAddEdge is AddEdge's checked counterpart, returning the sentinel
// errors AddEdge swallows.
func (g *Graph) TryAddEdge(u, v graph.NodeID, w interface{}) (graph.EdgeID, error) {
	return g.addEdge(u, v, w)
}

func (g *Graph) addEdge(u, v graph.NodeID, w interface{}) (graph.EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[u]; !ok {
		return -1, ErrNodeNotFound
	}
	if _, ok := g.nodes[v]; !ok {
		return -1, ErrNodeNotFound
	}
	if u == v && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}
	if !g.allowMulti && g.hasEdgeLocked(u, v) {
		return -1, ErrMultiEdgeNotAllowed
	}

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = &edgeEntry{id: id, from: u, to: v, weight: w}
	g.edgeOrder = append(g.edgeOrder, id)
	g.out[u] = append(g.out[u], id)
	if g.directed {
		g.in[v] = append(g.in[v], id)
	} else if u != v {
		g.out[v] = append(g.out[v], id)
	}

	return id, nil
}

// UpdateEdge upserts the edge between u and v: if one exists (checked the
// same way AddEdge would reject a duplicate) its weight is replaced,
// otherwise a new edge is created.
func (g *Graph) UpdateEdge(u, v graph.NodeID, w interface{}) graph.EdgeID {
	g.mu.Lock()
	if id, ok := g.findEdgeLocked(u, v); ok {
		g.edges[id].weight = w
		g.mu.Unlock()
		return id
	}
	g.mu.Unlock()

	return g.AddEdge(u, v, w)
}

// RemoveEdge deletes the edge with the given identifier.
// Complexity: O(deg) for the adjacency-list scrub.
func (g *Graph) RemoveEdge(id graph.EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[id]; !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(id)

	return nil
}

func (g *Graph) removeEdgeLocked(id graph.EdgeID) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	g.out[e.from] = removeID(g.out[e.from], id)
	if g.directed {
		g.in[e.to] = removeID(g.in[e.to], id)
	} else if e.from != e.to {
		g.out[e.to] = removeID(g.out[e.to], id)
	}
	delete(g.edges, id)
	g.edgeOrder = removeID(g.edgeOrder, id)
}

func removeID(s []graph.EdgeID, id graph.EdgeID) []graph.EdgeID {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func (g *Graph) hasEdgeLocked(u, v graph.NodeID) bool {
	_, ok := g.findEdgeLocked(u, v)
	return ok
}

func (g *Graph) findEdgeLocked(u, v graph.NodeID) (graph.EdgeID, bool) {
	for _, id := range g.out[u] {
		e := g.edges[id]
		if e.to == v || (!g.directed && e.from == v) {
			return id, true
		}
	}
	return -1, false
}

// Clear removes every node and edge, resetting the Graph to empty.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[graph.NodeID]*nodeEntry)
	g.edges = make(map[graph.EdgeID]*edgeEntry)
	g.pos = make(map[graph.NodeID]int)
	g.order = nil
	g.out = make(map[graph.NodeID][]graph.EdgeID)
	g.in = make(map[graph.NodeID][]graph.EdgeID)
	g.edgeOrder = nil
}
