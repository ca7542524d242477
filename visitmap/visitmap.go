package visitmap

import (
	"golang.org/x/tools/container/intsets"

	"github.com/vertigraph/vertigraph/graph"
)

// Dense is a VisitMap backed by a compact integer bitset, keyed by a
// graph.NodeCompactIndexable graph's dense index. Construction does not
// pre-size the set; it grows as indices are inserted.
type Dense struct {
	g   graph.NodeIndexable
	set intsets.Sparse
}

// NewDense builds an empty Dense visit map keyed by g's indices.
func NewDense(g graph.NodeIndexable) *Dense {
	return &Dense{g: g}
}

// Visit marks id visited and reports whether it was newly marked.
func (d *Dense) Visit(id graph.NodeID) bool {
	return d.set.Insert(d.g.ToIndex(id))
}

// IsVisited reports whether id has been marked.
func (d *Dense) IsVisited(id graph.NodeID) bool {
	return d.set.Has(d.g.ToIndex(id))
}

// Clear resets every mark, allowing the map to be reused across calls
// without reallocating its backing storage.
func (d *Dense) Clear() {
	d.set.Clear()
}

// Hash is a VisitMap backed by a plain map, for graphs with no usable
// compact index (or where one isn't worth computing for a single pass).
type Hash struct {
	seen map[graph.NodeID]struct{}
}

// NewHash builds an empty Hash visit map.
func NewHash() *Hash {
	return &Hash{seen: make(map[graph.NodeID]struct{})}
}

// Visit marks id visited and reports whether it was newly marked.
func (h *Hash) Visit(id graph.NodeID) bool {
	if _, ok := h.seen[id]; ok {
		return false
	}
	h.seen[id] = struct{}{}
	return true
}

// IsVisited reports whether id has been marked.
func (h *Hash) IsVisited(id graph.NodeID) bool {
	_, ok := h.seen[id]
	return ok
}

// Clear removes every mark. The backing map is reused, not reallocated.
func (h *Hash) Clear() {
	for k := range h.seen {
		delete(h.seen, k)
	}
}

var (
	_ graph.VisitMap = (*Dense)(nil)
	_ graph.VisitMap = (*Hash)(nil)
)
