package graph6

import (
	"github.com/vertigraph/vertigraph/graph"
	"github.com/vertigraph/vertigraph/graph/simple"
)

// Decode parses a graph6 string into a fresh undirected simple.Graph,
// one node per encoded position (unweighted, no node data) and one
// edge per adjacent pair the upper triangle marks.
//
// Time Complexity: O(V²)
func Decode(data string) (*simple.Graph, error) {
	if len(data) == 0 {
		return nil, ErrInvalidEncoding
	}

	raw := make([]int, len(data))
	for i, c := range []byte(data) {
		v := int(c) - printableOffset
		if v < 0 || v > 63 {
			return nil, ErrInvalidEncoding
		}
		raw[i] = v
	}

	order, rest, err := decodeOrder(raw)
	if err != nil {
		return nil, err
	}

	bits := bitsFromBytes(rest)
	needed := order * (order - 1) / 2
	if len(bits) < needed {
		return nil, ErrInvalidEncoding
	}

	g := simple.New()
	ids := make([]graph.NodeID, order)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}

	idx := 0
	for col := 1; col < order; col++ {
		for row := 0; row < col; row++ {
			if bits[idx] == 1 {
				g.AddEdge(ids[row], ids[col], nil)
			}
			idx++
		}
	}

	return g, nil
}

// decodeOrder reads the order field (single byte, or the literal value
// printableOffset followed by three bytes of 18-bit extended order)
// and returns the decoded order plus the remaining matrix bytes.
func decodeOrder(bytes []int) (int, []int, error) {
	if bytes[0] == printableOffset {
		if len(bytes) < 4 {
			return 0, nil, ErrInvalidEncoding
		}
		return bitsToInt(bitsFromBytes(bytes[1:4])), bytes[4:], nil
	}
	return bytes[0], bytes[1:], nil
}

// bitsFromBytes unpacks each already-offset-removed byte into its 6
// constituent bits, most significant first.
func bitsFromBytes(bytes []int) []int {
	bits := make([]int, 0, len(bytes)*6)
	for _, b := range bytes {
		for i := 5; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

func bitsToInt(bits []int) int {
	v := 0
	for _, b := range bits {
		v = v<<1 | b
	}
	return v
}
