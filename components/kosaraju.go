package components

import "github.com/vertigraph/vertigraph/graph"

// kosarajuFrame is one level of an explicit DFS stack: the node it was
// pushed for and a cursor over that node's neighbors in whichever
// direction the current pass uses. Descending to an undiscovered neighbor
// pushes a new frame instead of recursing.
type kosarajuFrame struct {
	node graph.NodeID
	it   graph.Nodes
}

// KosarajuSCC partitions g's nodes into strongly connected components via
// two depth-first passes: a forward pass recording finishing order, then a
// second pass over the reversed edge direction processed in reverse
// finishing order, each tree of which is one component. Both passes walk
// an explicit frame stack rather than recursing, so stack depth is bounded
// by available memory rather than the Go call stack.
func KosarajuSCC(g Graph) [][]graph.NodeID {
	nodes := graph.NodesOf(g.Nodes())
	visited := make(map[graph.NodeID]bool, len(nodes))
	finish := make([]graph.NodeID, 0, len(nodes))

	var frames []kosarajuFrame
	for _, n := range nodes {
		if visited[n.ID()] {
			continue
		}
		visited[n.ID()] = true
		frames = append(frames, kosarajuFrame{node: n.ID(), it: g.NeighborsDirected(n.ID(), graph.Outgoing)})

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			descended := false
			for top.it.Next() {
				nb := top.it.Node().ID()
				if visited[nb] {
					continue
				}
				visited[nb] = true
				frames = append(frames, kosarajuFrame{node: nb, it: g.NeighborsDirected(nb, graph.Outgoing)})
				descended = true
				break
			}
			if descended {
				continue
			}
			finished := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			finish = append(finish, finished.node)
		}
	}

	visited = make(map[graph.NodeID]bool, len(nodes))
	var components [][]graph.NodeID

	for i := len(finish) - 1; i >= 0; i-- {
		root := finish[i]
		if visited[root] {
			continue
		}
		comp := []graph.NodeID{root}
		visited[root] = true

		frames = frames[:0]
		frames = append(frames, kosarajuFrame{node: root, it: g.NeighborsDirected(root, graph.Incoming)})
		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			descended := false
			for top.it.Next() {
				nb := top.it.Node().ID()
				if visited[nb] {
					continue
				}
				visited[nb] = true
				comp = append(comp, nb)
				frames = append(frames, kosarajuFrame{node: nb, it: g.NeighborsDirected(nb, graph.Incoming)})
				descended = true
				break
			}
			if descended {
				continue
			}
			frames = frames[:len(frames)-1]
		}
		components = append(components, comp)
	}

	return components
}
