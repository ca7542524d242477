package components

import "github.com/vertigraph/vertigraph/graph"

// UndirectedGraph is the capability conjunction bridge- and articulation-
// point-finding need; both are undirected notions, so Neighbors rather
// than NeighborsDirected.
type UndirectedGraph interface {
	graph.NodeIdentifiers
	graph.Neighbors
}

type bridgeState struct {
	g        UndirectedGraph
	disc     map[graph.NodeID]int
	low      map[graph.NodeID]int
	timer    int
	bridges  [][2]graph.NodeID
	articPts map[graph.NodeID]bool
}

// bridgeFrame is one level of an explicit DFS stack for Bridges: the node
// it was pushed for, the edge back to its parent (so it is skipped exactly
// once), and a cursor over its neighbors.
type bridgeFrame struct {
	node          graph.NodeID
	parent        graph.NodeID
	it            graph.Nodes
	skippedParent bool
}

// Bridges returns every edge whose removal increases the number of
// connected components, as (u, v) endpoint pairs. Grounded on Tarjan's
// low-point bookkeeping (see components/tarjan.go for the same explicit
// frame-stack shape), specialized from cycle back-edges to the bridge
// condition low[v] > disc[u].
func Bridges(g UndirectedGraph) [][2]graph.NodeID {
	s := &bridgeState{g: g, disc: map[graph.NodeID]int{}, low: map[graph.NodeID]int{}}
	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		if _, seen := s.disc[n.ID()]; !seen {
			s.dfsBridges(n.ID())
		}
	}
	return s.bridges
}

func (s *bridgeState) dfsBridges(root graph.NodeID) {
	s.disc[root] = s.timer
	s.low[root] = s.timer
	s.timer++
	frames := []bridgeFrame{{node: root, parent: -1, it: s.g.Neighbors(root)}}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		descended := false
		for top.it.Next() {
			v := top.it.Node().ID()
			if v == top.parent && !top.skippedParent {
				// Skip exactly one edge back to the immediate parent, so a
				// genuine parallel edge to the parent is still honored.
				top.skippedParent = true
				continue
			}
			if _, seen := s.disc[v]; !seen {
				s.disc[v] = s.timer
				s.low[v] = s.timer
				s.timer++
				frames = append(frames, bridgeFrame{node: v, parent: top.node, it: s.g.Neighbors(v)})
				descended = true
				break
			}
			if s.disc[v] < s.low[top.node] {
				s.low[top.node] = s.disc[v]
			}
		}
		if descended {
			continue
		}

		finished := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		if len(frames) == 0 {
			continue
		}
		u := &frames[len(frames)-1]
		if s.low[finished.node] < s.low[u.node] {
			s.low[u.node] = s.low[finished.node]
		}
		if s.low[finished.node] > s.disc[u.node] {
			s.bridges = append(s.bridges, [2]graph.NodeID{u.node, finished.node})
		}
	}
}

// articFrame is one level of an explicit DFS stack for ArticulationPoints;
// children counts descendants discovered directly from this frame's node,
// needed for the root-specific articulation condition (children > 1).
type articFrame struct {
	node          graph.NodeID
	parent        graph.NodeID
	it            graph.Nodes
	skippedParent bool
	children      int
}

// ArticulationPoints returns every node whose removal increases the number
// of connected components.
func ArticulationPoints(g UndirectedGraph) []graph.NodeID {
	s := &bridgeState{g: g, disc: map[graph.NodeID]int{}, low: map[graph.NodeID]int{}, articPts: map[graph.NodeID]bool{}}
	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		if _, seen := s.disc[n.ID()]; !seen {
			s.dfsArtic(n.ID())
		}
	}
	out := make([]graph.NodeID, 0, len(s.articPts))
	for id := range s.articPts {
		out = append(out, id)
	}
	return out
}

func (s *bridgeState) dfsArtic(root graph.NodeID) {
	s.disc[root] = s.timer
	s.low[root] = s.timer
	s.timer++
	frames := []articFrame{{node: root, parent: -1, it: s.g.Neighbors(root)}}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		descended := false
		for top.it.Next() {
			v := top.it.Node().ID()
			if v == top.parent && !top.skippedParent {
				top.skippedParent = true
				continue
			}
			if _, seen := s.disc[v]; !seen {
				top.children++
				s.disc[v] = s.timer
				s.low[v] = s.timer
				s.timer++
				frames = append(frames, articFrame{node: v, parent: top.node, it: s.g.Neighbors(v)})
				descended = true
				break
			}
			if s.disc[v] < s.low[top.node] {
				s.low[top.node] = s.disc[v]
			}
		}
		if descended {
			continue
		}

		finished := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		if len(frames) == 0 {
			continue
		}
		u := &frames[len(frames)-1]
		if s.low[finished.node] < s.low[u.node] {
			s.low[u.node] = s.low[finished.node]
		}
		isRoot := u.parent == -1
		if isRoot && u.children > 1 {
			s.articPts[u.node] = true
		}
		if !isRoot && s.low[finished.node] >= s.disc[u.node] {
			s.articPts[u.node] = true
		}
	}
}
