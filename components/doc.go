// Package components computes connectivity structure over the graph
// capability interfaces (component F of the core specification): weakly
// connected components, strongly connected components (Kosaraju and
// Tarjan), bridges, articulation points, 2-edge-connected components, and
// condensation into a component DAG.
//
// Weakly connected components reuse unionfind the same way the teacher's
// prim_kruskal.Kruskal does. Strongly connected components are grounded on
// the Tarjan sketch in other_examples' scc.go, converted from a recursive
// map-keyed walk into an iterative, reusable-state form (TarjanSCC) whose
// Reset clears its map-keyed index/low-link scratch in place, so repeated
// calls on the same graph avoid reallocating it. Kosaraju's two passes and
// the bridge/articulation-point low-point DFS walk the same explicit
// frame-stack shape instead of recursing.
package components
