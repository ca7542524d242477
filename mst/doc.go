// Package mst computes minimum spanning trees over an undirected, weighted
// graph: Kruskal's algorithm (global edge sort + union-find) and Prim's
// algorithm (single-tree growth from a root via a min-heap of frontier
// edges), adapted from the teacher's prim_kruskal package.
//
// Kruskal here additionally exposes Materialize, turning the selected
// edge set into an iterator-like consumable for any graph.Create
// storage — the spec's "returns an iterator of tree elements... consumable
// by any Build + Create storage" phrasing, realized concretely since this
// module's Build/Create capability interfaces already give every storage
// that shape.
package mst
