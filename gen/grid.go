package gen

import (
	"fmt"

	"github.com/vertigraph/vertigraph/graph"
)

const minGridDim = 1

// Grid adds a rows×cols orthogonal 4-neighborhood grid (rows, cols ≥
// 1) to g: nodes in row-major order, then an edge from each cell to
// its right and bottom neighbor where they exist, mirrored if g is
// directed. It returns the nodes as a [rows][cols] slice, nodes[r][c]
// being the node at row r, column c.
func Grid(g Graph, rows, cols int, opts ...Option) ([][]graph.NodeID, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrTooFewNodes)
	}
	o := resolveOptions(opts)

	nodes := make([][]graph.NodeID, rows)
	for r := range nodes {
		nodes[r] = make([]graph.NodeID, cols)
		for c := range nodes[r] {
			nodes[r][c] = g.AddNode(nil)
		}
	}

	connect := func(u, v graph.NodeID) error {
		w := o.weight(o.rng)
		if err := addEdge(g, u, v, w); err != nil {
			return fmt.Errorf("Grid: %w", err)
		}
		if err := mirrorIfDirected(g, u, v, w); err != nil {
			return fmt.Errorf("Grid: %w", err)
		}
		return nil
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := connect(nodes[r][c], nodes[r][c+1]); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := connect(nodes[r][c], nodes[r+1][c]); err != nil {
					return nil, err
				}
			}
		}
	}
	return nodes, nil
}
