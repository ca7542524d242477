package hits

import "github.com/vertigraph/vertigraph/graph"

// Graph is the capability conjunction HITS needs: dense indexing to back
// hub/authority vectors, and directed edge iteration to build each node's
// outlink and inlink lists once per call.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.EdgesDirected
}

// Options configures a HITS run.
type Options struct {
	tolerance     float64
	maxIterations int
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns tolerance 1e-8 capped at 100 sweeps.
func DefaultOptions() Options {
	return Options{tolerance: 1e-8, maxIterations: 100}
}

// WithTolerance overrides the L1 convergence threshold between sweeps,
// measured across the concatenation of the hub and authority vectors.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations overrides the sweep cap.
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

// Result is a converged (or capped) HITS run.
type Result struct {
	Hub        map[graph.NodeID]float64
	Authority  map[graph.NodeID]float64
	Iterations int
	Converged  bool
}

// linkStructure caches each node's outbound and inbound neighbor indices
// so neither sweep direction needs to re-walk the graph's edge storage.
type linkStructure struct {
	ids      []graph.NodeID
	outbound [][]int
	inbound  [][]int
}

func buildLinkStructure(g Graph) *linkStructure {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	ls := &linkStructure{
		ids:      make([]graph.NodeID, n),
		outbound: make([][]int, n),
		inbound:  make([][]int, n),
	}
	for i, node := range nodes {
		ls.ids[i] = node.ID()
	}
	for i, node := range nodes {
		for _, e := range graph.EdgesOf(g.EdgesDirected(node.ID(), graph.Outgoing)) {
			to := e.To()
			if to == node.ID() {
				to = e.From()
			}
			j := g.ToIndex(to)
			ls.outbound[i] = append(ls.outbound[i], j)
			ls.inbound[j] = append(ls.inbound[j], i)
		}
	}
	return ls
}
