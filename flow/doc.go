// Package flow computes maximum flow and minimum cuts on a capacitated
// directed graph: Ford-Fulkerson's Edmonds-Karp variant (shortest
// augmenting paths by BFS), Dinic's algorithm (layered blocking flow), and
// a derived minimum s-t cut.
//
// Adapted from the teacher's flow package, which ran the same family of
// algorithms over *core.Graph with string vertex ids, materializing a
// fresh *core.Graph as the residual after every run. Here the residual is
// never built as a second graph: flow is tracked per edge id directly
// against the input graph (map[graph.EdgeID]float64), and each traversal
// step derives residual capacity on the fly — forward residual is
// cap−flow, backward residual is flow — the bookkeeping the spec calls
// for, and a closer fit to this module's edge-id-addressed storage than
// rebuilding a parallel graph on every call.
//
// FordFulkerson is kept as the teacher names it, as a thin alias for
// EdmondsKarp: the spec specifies Ford-Fulkerson only in its
// Edmonds-Karp (BFS shortest-augmenting-path) form, so the two entry
// points share one implementation rather than also carrying the
// teacher's separate DFS-based variant.
package flow
