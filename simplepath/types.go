package simplepath

import "github.com/vertigraph/vertigraph/graph"

// Graph is the capability conjunction simple-path enumeration needs:
// undirected (or default-direction) neighbor iteration to extend a walk.
type Graph interface {
	graph.Neighbors
}

// NoLimit disables the upper bound on intermediate path length.
const NoLimit = -1

// Options configures which paths an Iterator yields.
type Options struct {
	minNodes int
	maxNodes int
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions imposes no intermediate-length bound at all: every
// simple path between source and target is yielded.
func DefaultOptions() Options {
	return Options{minNodes: 0, maxNodes: NoLimit}
}

// WithMinNodes overrides the minimum number of intermediate nodes a
// yielded path must contain.
func WithMinNodes(n int) Option {
	return func(o *Options) { o.minNodes = n }
}

// WithMaxNodes overrides the maximum number of intermediate nodes a
// yielded path may contain. Pass NoLimit to disable the bound.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.maxNodes = n }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
