package dag

import (
	"golang.org/x/tools/container/intsets"

	"github.com/vertigraph/vertigraph/graph"
)

// CompactGraph is the capability conjunction transitive reduction and
// closure need: dense node indices on top of directed neighbor iteration.
type CompactGraph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.NeighborsDirected
}

// TransitiveReduction returns the minimal edge set whose transitive closure
// equals g's, as (from, to) NodeID pairs. g must be acyclic; a detected
// cycle is reported via gerr.Cycle. Requires a toposorted walk as a
// precondition: closures are accumulated in reverse-topological order so
// that every successor's closure is already complete before a node's own
// redundant edges are pruned.
func TransitiveReduction(g CompactGraph) ([][2]graph.NodeID, error) {
	order, err := TopologicalSort(g)
	if err != nil {
		return nil, err
	}

	n := g.NodeBound()
	reach := make([]intsets.Sparse, n)

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		u := g.ToIndex(id)
		succ := g.NeighborsDirected(id, graph.Outgoing)
		for succ.Next() {
			v := g.ToIndex(succ.Node().ID())
			reach[u].Insert(v)
			reach[u].UnionWith(&reach[v])
		}
	}

	var kept [][2]graph.NodeID
	for _, id := range order {
		u := g.ToIndex(id)
		succ := g.NeighborsDirected(id, graph.Outgoing)
		var direct []int
		directIDs := make(map[int]graph.NodeID)
		for succ.Next() {
			nid := succ.Node().ID()
			v := g.ToIndex(nid)
			direct = append(direct, v)
			directIDs[v] = nid
		}
		for _, v := range direct {
			redundant := false
			for _, w := range direct {
				if w == v {
					continue
				}
				if reach[w].Has(v) {
					redundant = true
					break
				}
			}
			if !redundant {
				kept = append(kept, [2]graph.NodeID{id, directIDs[v]})
			}
		}
	}

	return kept, nil
}

// TransitiveClosure returns, for every node, the full set of nodes reachable
// from it via one or more directed edges (the node itself excluded unless a
// cycle makes it reachable from itself — impossible here since g must be
// acyclic).
func TransitiveClosure(g CompactGraph) (map[graph.NodeID][]graph.NodeID, error) {
	order, err := TopologicalSort(g)
	if err != nil {
		return nil, err
	}

	n := g.NodeBound()
	reach := make([]intsets.Sparse, n)

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		u := g.ToIndex(id)
		succ := g.NeighborsDirected(id, graph.Outgoing)
		for succ.Next() {
			v := g.ToIndex(succ.Node().ID())
			reach[u].Insert(v)
			reach[u].UnionWith(&reach[v])
		}
	}

	out := make(map[graph.NodeID][]graph.NodeID, n)
	for _, id := range order {
		u := g.ToIndex(id)
		var nodes []graph.NodeID
		var idx int
		for ok := reach[u].TakeMin(&idx); ok; ok = reach[u].TakeMin(&idx) {
			nid, found := g.FromIndex(idx)
			if !found {
				continue
			}
			nodes = append(nodes, nid)
		}
		out[id] = nodes
	}

	return out, nil
}
