// Package path implements single-source and all-pairs shortest-path
// algorithms over the graph capability interfaces (component E of the core
// specification): Dijkstra, A*, Bellman-Ford, SPFA, Floyd-Warshall,
// Johnson's algorithm, and k-shortest-path-length.
//
// Every algorithm is generic over a Number cost type instead of being fixed
// to the teacher's int64, and takes an explicit WeightFunc extractor rather
// than assuming graph.WeightedEdge, so callers can derive a cost from any
// edge payload (including one stored via graph.DataMap rather than
// Weight()).
//
// Adapted from the teacher's dijkstra package: the same functional
// Option/DefaultOptions shape, lazy-decrease-key container/heap priority
// queue, and negative-weight detection (checked per edge during
// relaxation rather than in an upfront scan) survive, generalized from
// *core.Graph/string vertex IDs to the capability interfaces and
// graph.NodeID. Dijkstra's pop-before-relax iterator form, A*'s (f, h, g)
// tie-break, SPFA's structural negative-cycle confirmation,
// Floyd-Warshall's overflow guard, and k-shortest-path-length's pop-counter
// semantics follow petgraph's behavior where the teacher has no equivalent.
package path
