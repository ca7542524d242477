// Package clique enumerates maximal cliques in an undirected graph via
// Bron-Kerbosch with pivoting, and finds a single largest maximal clique
// via a branch-and-bound search in the style of McCreesh & Prosser's
// bit-parallel maximum-clique solver: order candidates by a greedy
// coloring bound and prune any branch whose remaining color count cannot
// beat the best clique found so far.
//
// No pack repo implements clique search directly; the branch-and-bound
// shape (recurse over a candidate set, prune via an upper bound, keep a
// running best) is grounded on the teacher's tsp/bb.go (Held-Karp/
// branch-and-bound TSP solver), generalized from tour-cost bounding to
// clique-size bounding.
package clique
