package components

import "github.com/vertigraph/vertigraph/graph"

// TarjanSCC holds the scratch state for Tarjan's strongly-connected-
// components algorithm, explicit and reusable so a caller re-running it on
// the same graph (for instance after incremental edits) calls Reset instead
// of reallocating the index/low-link bookkeeping. The graph is fixed by
// NewTarjanSCC; Reset does not switch the state to another graph.
//
// The walk itself is iterative rather than the classic recursive
// formulation: each DFS frame keeps its own node-iterator cursor, so
// descending into a successor is pushing a new frame rather than a
// recursive call, avoiding a Go call-stack frame per graph node on deep
// or highly connected graphs.
type TarjanSCC struct {
	g       Graph
	index   int
	indices map[graph.NodeID]int
	low     map[graph.NodeID]int
	onStack map[graph.NodeID]bool
	stack   []graph.NodeID
	comps   [][]graph.NodeID
}

// NewTarjanSCC prepares Tarjan state for g.
func NewTarjanSCC(g Graph) *TarjanSCC {
	t := &TarjanSCC{g: g}
	t.Reset()
	return t
}

// Reset clears all scratch state so the same TarjanSCC can be reused,
// typically after the underlying graph changed.
func (t *TarjanSCC) Reset() {
	t.index = 0
	if t.indices == nil {
		t.indices = make(map[graph.NodeID]int)
		t.low = make(map[graph.NodeID]int)
		t.onStack = make(map[graph.NodeID]bool)
	} else {
		clear(t.indices)
		clear(t.low)
		clear(t.onStack)
	}
	t.stack = t.stack[:0]
	t.comps = nil
}

// Run computes every strongly connected component of g, each as a slice of
// member nodes. Components are returned in reverse-topological discovery
// order (the order SCC completion naturally produces), which Condensation
// relies on directly.
func (t *TarjanSCC) Run() [][]graph.NodeID {
	nodes := graph.NodesOf(t.g.Nodes())
	for _, n := range nodes {
		if _, seen := t.indices[n.ID()]; !seen {
			t.strongconnect(n.ID())
		}
	}
	return t.comps
}

type tarjanFrame struct {
	node graph.NodeID
	it   graph.Nodes
}

func (t *TarjanSCC) strongconnect(start graph.NodeID) {
	frames := []tarjanFrame{}

	push := func(id graph.NodeID) {
		t.indices[id] = t.index
		t.low[id] = t.index
		t.index++
		t.stack = append(t.stack, id)
		t.onStack[id] = true
		frames = append(frames, tarjanFrame{node: id, it: t.g.NeighborsDirected(id, graph.Outgoing)})
	}
	push(start)

	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		if top.it.Next() {
			w := top.it.Node().ID()
			if _, seen := t.indices[w]; !seen {
				push(w)
				continue
			}
			if t.onStack[w] && t.indices[w] < t.low[top.node] {
				t.low[top.node] = t.indices[w]
			}
			continue
		}

		v := top.node
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			parent := &frames[len(frames)-1]
			if t.low[v] < t.low[parent.node] {
				t.low[parent.node] = t.low[v]
			}
		}

		if t.low[v] == t.indices[v] {
			var comp []graph.NodeID
			for {
				w := t.stack[len(t.stack)-1]
				t.stack = t.stack[:len(t.stack)-1]
				t.onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			t.comps = append(t.comps, comp)
		}
	}
}
