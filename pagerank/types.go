package pagerank

import (
	"github.com/vertigraph/vertigraph/graph"
)

// Graph is the capability conjunction PageRank needs: dense indexing to
// back score vectors, and directed edge iteration to walk outlinks once
// when building the transition structure the sweeps read.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.EdgesDirected
}

// Options configures a PageRank run. Construct via DefaultOptions and the
// With* functions rather than a struct literal, so new fields don't break
// callers.
type Options struct {
	damping       float64
	tolerance     float64
	maxIterations int
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the conventional PageRank configuration: damping
// 0.85, L1-tolerance 1e-8, capped at 100 sweeps.
func DefaultOptions() Options {
	return Options{damping: 0.85, tolerance: 1e-8, maxIterations: 100}
}

// WithDamping overrides the damping factor (the teleport probability is
// 1-damping).
func WithDamping(d float64) Option {
	return func(o *Options) { o.damping = d }
}

// WithTolerance overrides the L1 convergence threshold between sweeps.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations overrides the sweep cap applied whether or not the
// iteration has converged.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.maxIterations = n }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Result is a converged (or capped) PageRank run.
type Result struct {
	// Scores maps each node to its stationary-distribution rank; they sum
	// to 1 over the whole node set.
	Scores map[graph.NodeID]float64
	// Iterations is the number of sweeps actually performed.
	Iterations int
	// Converged reports whether the L1 delta fell under tolerance before
	// the iteration cap was reached.
	Converged bool
}

// linkStructure is the dense, index-addressed view of the graph built
// once up front and shared by both the sequential and parallel sweeps:
// inbound[i] lists the indices that link to i, and outDegree[i] is the
// number of i's outgoing edges (cached since dangling nodes need it on
// every sweep).
type linkStructure struct {
	ids       []graph.NodeID
	inbound   [][]int
	outDegree []int
}

func buildLinkStructure(g Graph) *linkStructure {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	ls := &linkStructure{
		ids:       make([]graph.NodeID, n),
		inbound:   make([][]int, n),
		outDegree: make([]int, n),
	}
	for i, node := range nodes {
		ls.ids[i] = node.ID()
	}
	for i, node := range nodes {
		out := graph.EdgesOf(g.EdgesDirected(node.ID(), graph.Outgoing))
		ls.outDegree[i] = len(out)
		for _, e := range out {
			to := e.To()
			if to == node.ID() {
				to = e.From()
			}
			j := g.ToIndex(to)
			ls.inbound[j] = append(ls.inbound[j], i)
		}
	}
	return ls
}
