package dag

import (
	"sort"

	"github.com/vertigraph/vertigraph/graph"
)

// DetectCycles reports the simple cycles of g that one depth-first walk
// closes with a back edge to a node still on its stack, each as a closed
// node sequence [v0, v1, ..., v0]. A cycle whose closing edge reaches an
// already-finished node is not reported, so not every simple cycle of g
// appears. Each reported cycle appears exactly once in a canonical
// rotation (its own lexicographically least rotation, or that of its
// reverse, whichever sorts first), and the returned list is sorted for
// deterministic output.
func DetectCycles(g Graph) ([][]graph.NodeID, error) {
	state := make(map[graph.NodeID]int)
	seen := make(map[string]struct{})
	var cycles [][]graph.NodeID

	nodes := graph.NodesOf(g.Nodes())
	for _, n := range nodes {
		if state[n.ID()] == white {
			dfsCycles(g, n.ID(), state, seen, &cycles)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return lessSeq(cycles[i], cycles[j])
	})

	return cycles, nil
}

const (
	white = iota
	gray
	black
)

// cycleFrame is one level of the explicit DFS stack dfsCycles walks: the
// node it was pushed for and a cursor over that node's successors. The
// stack's node sequence doubles as the current root-to-here path, so a
// back edge into a gray node's cycle segment is read straight off it.
type cycleFrame struct {
	node graph.NodeID
	it   graph.Nodes
}

func dfsCycles(g Graph, start graph.NodeID, state map[graph.NodeID]int, seen map[string]struct{}, cycles *[][]graph.NodeID) {
	state[start] = gray
	frames := []cycleFrame{{node: start, it: g.NeighborsDirected(start, graph.Outgoing)}}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		descended := false
		for top.it.Next() {
			nb := top.it.Node().ID()
			switch state[nb] {
			case white:
				state[nb] = gray
				frames = append(frames, cycleFrame{node: nb, it: g.NeighborsDirected(nb, graph.Outgoing)})
				descended = true
			case gray:
				idx := -1
				for i, f := range frames {
					if f.node == nb {
						idx = i
						break
					}
				}
				if idx >= 0 {
					segment := make([]graph.NodeID, 0, len(frames)-idx)
					for _, f := range frames[idx:] {
						segment = append(segment, f.node)
					}
					recordCycle(segment, seen, cycles)
				}
			}
			if descended {
				break
			}
		}
		if descended {
			continue
		}

		finished := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		state[finished.node] = black
	}
}

func recordCycle(segment []graph.NodeID, seen map[string]struct{}, cycles *[][]graph.NodeID) {
	canon := canonicalRotation(segment)
	sig := sig(canon)
	if _, ok := seen[sig]; ok {
		return
	}
	seen[sig] = struct{}{}
	closed := append(append([]graph.NodeID(nil), canon...), canon[0])
	*cycles = append(*cycles, closed)
}

// canonicalRotation returns the lexicographically minimal rotation among
// base's own rotations and its reversal's rotations, so a cycle discovered
// from any starting point or traversal direction produces the same signature.
func canonicalRotation(base []graph.NodeID) []graph.NodeID {
	fwd := minimalRotation(base)
	rev := append([]graph.NodeID(nil), base...)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	bwd := minimalRotation(rev)
	if lessSeq(bwd, fwd) {
		return bwd
	}
	return fwd
}

func minimalRotation(s []graph.NodeID) []graph.NodeID {
	n := len(s)
	best := s
	for r := 1; r < n; r++ {
		rot := make([]graph.NodeID, n)
		for i := 0; i < n; i++ {
			rot[i] = s[(i+r)%n]
		}
		if lessSeq(rot, best) {
			best = rot
		}
	}
	return best
}

func lessSeq(a, b []graph.NodeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func sig(s []graph.NodeID) string {
	buf := make([]byte, 0, len(s)*4)
	for _, id := range s {
		buf = append(buf, byte(id), byte(id>>8), byte(id>>16), byte(id>>24), ',')
	}
	return string(buf)
}

// UndirectedGraph is the capability conjunction undirected cycle detection
// needs.
type UndirectedGraph interface {
	graph.NodeIdentifiers
	graph.Neighbors
}

// undirectedCycleFrame is one level of the explicit DFS stack
// IsAcyclicUndirected walks: the node it was pushed for, the edge back to
// its parent (skipped exactly once), and a cursor over its neighbors.
type undirectedCycleFrame struct {
	node          graph.NodeID
	parent        graph.NodeID
	it            graph.Nodes
	skippedParent bool
}

// IsAcyclicUndirected reports whether g, read as an undirected graph,
// contains no cycle. Unlike IsAcyclic, a single edge traversed back to the
// node it came from isn't a cycle; only a second edge into a different
// already-visited node is, so each frame skips exactly one edge back to its
// parent before treating a revisit as a cycle.
func IsAcyclicUndirected(g UndirectedGraph) bool {
	visited := make(map[graph.NodeID]bool)
	for _, n := range graph.NodesOf(g.Nodes()) {
		if visited[n.ID()] {
			continue
		}
		if hasCycleFromUndirected(g, n.ID(), visited) {
			return false
		}
	}
	return true
}

func hasCycleFromUndirected(g UndirectedGraph, root graph.NodeID, visited map[graph.NodeID]bool) bool {
	visited[root] = true
	frames := []undirectedCycleFrame{{node: root, parent: -1, it: g.Neighbors(root)}}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		descended := false
		for top.it.Next() {
			v := top.it.Node().ID()
			if v == top.parent && !top.skippedParent {
				top.skippedParent = true
				continue
			}
			if visited[v] {
				return true
			}
			visited[v] = true
			frames = append(frames, undirectedCycleFrame{node: v, parent: top.node, it: g.Neighbors(v)})
			descended = true
			break
		}
		if descended {
			continue
		}
		frames = frames[:len(frames)-1]
	}
	return false
}
