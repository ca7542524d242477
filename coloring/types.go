package coloring

import (
	"errors"

	"github.com/vertigraph/vertigraph/graph"
)

// ErrNoValidColoring is returned when no coloring could be found within
// the configured color budget.
var ErrNoValidColoring = errors.New("coloring: exceeded maximum color budget")

// Graph is the capability conjunction WFC coloring needs: dense indexing
// to back per-node domains, and undirected neighbor iteration to
// propagate a collapse.
type Graph interface {
	graph.NodeCompactIndexable
	graph.NodeIdentifiers
	graph.Neighbors
}

// Options configures a coloring run.
type Options struct {
	initialColors int
	maxColors     int
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions starts the search at 1 color and allows it to grow
// without an explicit cap (WFC caps itself at max-degree+1 regardless).
func DefaultOptions() Options {
	return Options{initialColors: 1, maxColors: 0}
}

// WithInitialColors overrides the first candidate color count attempted.
func WithInitialColors(k int) Option {
	return func(o *Options) { o.initialColors = k }
}

// WithMaxColors caps how many colors the search is willing to grow to
// before giving up with ErrNoValidColoring. 0 means no explicit cap
// beyond the max-degree+1 bound the search always respects.
func WithMaxColors(k int) Option {
	return func(o *Options) { o.maxColors = k }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Result is a successful coloring.
type Result struct {
	// Colors maps each node to its assigned color, 0-indexed.
	Colors map[graph.NodeID]int
	// NumColors is the number of distinct colors the winning attempt used.
	NumColors int
	// Restarts counts how many contradiction-triggered reruns preceded
	// the winning attempt.
	Restarts int
}
