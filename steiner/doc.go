// Package steiner approximates a minimum Steiner tree (a tree connecting
// a chosen subset of terminal nodes, possibly through non-terminal
// "Steiner points") via the classic metric-closure construction: run a
// shortest-path search from every terminal (path.Dijkstra, grounded on
// the teacher's own path package), build a complete graph over the
// terminals weighted by those pairwise distances, find its minimum
// spanning tree (mst.Kruskal), then back-substitute each closure edge
// with the real shortest path it stands for, deduplicating edges shared
// by more than one substituted path. The result is a 2-approximation of
// the true minimum Steiner tree.
package steiner
