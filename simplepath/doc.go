// Package simplepath lazily enumerates every simple path between two
// nodes whose intermediate length (the node count excluding the two
// endpoints) falls within a caller-chosen [min, max] range. The search
// is an explicit-stack depth-first walk rather than a recursive one, so
// a single path can be produced per Next() call without the whole
// search space being materialized up front — the same pull-based shape
// as the module's other resettable iterators (graph.Nodes, graph.Edges),
// specialized here to a one-shot walk instead of a replayable one.
package simplepath
