package labelprop

import "github.com/vertigraph/vertigraph/graph"

// Graph is the capability conjunction label propagation needs: dense
// indexing to back the label array, node enumeration to seed it, and
// the neighbor/visit-map pair traverse.BFS requires to build each
// node's k-hop neighborhood.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.Neighbors
	graph.Visitable
}

// Options configures a label-propagation run.
type Options struct {
	hops          int
	maxIterations int
	seed          map[graph.NodeID]graph.NodeID
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns a 1-hop neighborhood vote capped at 20 rounds,
// with every node initially labeled by its own identifier.
func DefaultOptions() Options {
	return Options{hops: 1, maxIterations: 20}
}

// WithHops overrides the neighborhood radius a node votes over.
func WithHops(k int) Option {
	return func(o *Options) { o.hops = k }
}

// WithMaxIterations overrides the round cap applied whether or not
// labels have stabilized.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.maxIterations = n }
}

// WithSeedLabels overrides the initial label assignment for the given
// nodes; any node absent from seed still defaults to its own identifier.
func WithSeedLabels(seed map[graph.NodeID]graph.NodeID) Option {
	return func(o *Options) { o.seed = seed }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Result is a stabilized (or capped) label-propagation run.
type Result struct {
	// Labels maps each node to the label it converged on.
	Labels map[graph.NodeID]graph.NodeID
	// Iterations is the number of rounds actually performed.
	Iterations int
	// Converged reports whether a round produced no label changes
	// before the iteration cap was reached.
	Converged bool
}
