// Package pagerank computes PageRank centrality by power iteration over a
// directed graph's link structure, with a data-parallel variant that
// partitions the per-node score update across goroutines.
//
// The iteration shape (repeated sweeps to a fixed-point or an iteration
// cap, dangling-node mass redistributed uniformly) follows how the
// teacher structures its own iterative fixed-point solvers (repeated
// relaxation passes in path/bellman_ford.go); the parallel fan-out is
// grounded on gonum-gonum's graph/network and graph/centrality packages,
// which partition per-node iteration across goroutines for the same
// family of centrality measures, here expressed with
// golang.org/x/sync/errgroup instead of a raw sync.WaitGroup.
package pagerank
