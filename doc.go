// Package vertigraph is a general-purpose graph-algorithms library: a
// capability-interface core (package graph, with graph/simple as its
// reference storage) plus a family of algorithm packages built against
// those capabilities rather than any one concrete representation.
//
//	graph/       — capability interfaces (Neighbors, Build, AdjacencyMatrix, ...)
//	traverse/    — BFS, DFS, topological walks
//	path/        — Dijkstra, A*, Bellman-Ford, SPFA, Floyd-Warshall, Johnson
//	components/  — weak/strongly-connected components, bridges, articulation points
//	flow/        — Edmonds-Karp, Dinic's, min-s-t-cut
//	match/       — greedy, blossom, and bipartite matching
//	mst/         — Kruskal and Prim
//	dag/         — cycle detection, transitive reduction and closure
//	community/   — modularity, Louvain community detection
//	mincut/      — Stoer-Wagner global minimum cut
//	coloring/    — graph coloring
//	clique/      — maximal/maximum clique search
//	chordal/     — chordality testing and perfect elimination orderings
//	iso/         — (sub)graph isomorphism
//	hits/        — HITS hub/authority scoring
//	pagerank/    — PageRank
//	labelprop/   — label propagation community detection
//	steiner/     — Steiner tree approximation
//	simplepath/  — simple-path enumeration
//	gen/         — synthetic topology generators (cycle, grid, random, ...)
//	graph6/      — graph6 ASCII (de)serialization
//	gerr/        — shared structured error taxonomy
//
// No algorithm here takes a concrete storage type directly; each declares
// the minimal conjunction of graph capabilities it needs, so the same
// algorithm runs unchanged over graph/simple's storage, a caller's own
// storage, or a filtered/reversed view of either.
package vertigraph
