package graph6

import (
	"errors"

	"github.com/vertigraph/vertigraph/graph"
)

// printableOffset is added to every packed 6-bit value (N in the
// format's own terminology) to keep the encoding in the printable
// ASCII range.
const printableOffset = 63

// extendedGraphLimit is the largest order the 18-bit extended order
// field can represent.
const extendedGraphLimit = 258047

// ErrInvalidEncoding is returned when a string is not a well-formed
// graph6 encoding: too short for its declared order, or containing a
// byte outside the format's printable range.
var ErrInvalidEncoding = errors.New("graph6: invalid encoding")

// ErrTooManyNodes is returned by Encode when g has more nodes than the
// format's extended order field can represent.
var ErrTooManyNodes = errors.New("graph6: graph order exceeds supported range")

// Graph is the capability conjunction Encode needs: stable node
// enumeration to fix a node ordering, and an adjacency witness to test
// each pair of that ordering in O(1).
type Graph interface {
	graph.NodeIdentifiers
	graph.AdjacencyMatrix
}
