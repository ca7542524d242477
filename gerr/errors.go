package gerr

import (
	"errors"
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

// Sentinel errors with no payload beyond their meaning.
var (
	// ErrNegativeCycle is returned by a shortest-path algorithm that
	// assumed no negative cycle reached one.
	ErrNegativeCycle = errors.New("gerr: negative cycle detected")

	// ErrNegativeWeight is returned by algorithms (Dijkstra, A*) that
	// require non-negative edge weights when one is found.
	ErrNegativeWeight = errors.New("gerr: negative edge weight")

	// ErrNodeNotFound is returned when an operation references an
	// identifier the graph does not recognise.
	ErrNodeNotFound = errors.New("gerr: node not found")
)

// Cycle reports that a cycle-free operation (toposort, transitive
// reduction) encountered a cycle; Node is any node on the detected cycle.
type Cycle struct {
	Node graph.NodeID
}

func (e *Cycle) Error() string {
	return fmt.Sprintf("gerr: cycle detected at node %d", e.Node)
}

// NewCycle wraps a Cycle so errors.Is(err, &Cycle{}) kind matching works
// alongside errors.As for the node payload.
func NewCycle(node graph.NodeID) error {
	return fmt.Errorf("%w", &Cycle{Node: node})
}

// NotAPartition reports that a partition-taking operation (modularity) was
// given subsets that miss or duplicate some node.
type NotAPartition struct {
	// Missing lists nodes absent from every subset.
	Missing []graph.NodeID
	// Duplicated lists nodes present in more than one subset.
	Duplicated []graph.NodeID
}

func (e *NotAPartition) Error() string {
	return fmt.Sprintf("gerr: not a partition (missing=%d duplicated=%d)", len(e.Missing), len(e.Duplicated))
}

// EdgesNotSorted reports that a function requiring pre-sorted edge input
// found one out of order. FirstError is the (row, col) index pair at which
// ordering broke.
type EdgesNotSorted struct {
	FirstError [2]int
}

func (e *EdgesNotSorted) Error() string {
	return fmt.Sprintf("gerr: edges not sorted, first violation at (%d,%d)", e.FirstError[0], e.FirstError[1])
}

// WouldCycle reports that a batched DAG-edge insertion was rolled back
// because at least one edge would have created a cycle. Edges carries the
// rejected edge weights so the caller may react.
type WouldCycle struct {
	Edges []interface{}
}

func (e *WouldCycle) Error() string {
	return fmt.Sprintf("gerr: batched insertion would create a cycle (%d edges rejected)", len(e.Edges))
}

// Is implements errors.Is support so callers can compare WouldCycle values
// by kind without caring about payload equality.
func (e *WouldCycle) Is(target error) bool {
	_, ok := target.(*WouldCycle)
	return ok
}

// Is implements errors.Is support for Cycle by kind.
func (e *Cycle) Is(target error) bool {
	_, ok := target.(*Cycle)
	return ok
}

// Is implements errors.Is support for NotAPartition by kind.
func (e *NotAPartition) Is(target error) bool {
	_, ok := target.(*NotAPartition)
	return ok
}

// Is implements errors.Is support for EdgesNotSorted by kind.
func (e *EdgesNotSorted) Is(target error) bool {
	_, ok := target.(*EdgesNotSorted)
	return ok
}
