// Package match computes matchings on undirected graphs: a deterministic
// greedy pass, Edmonds' blossom algorithm for true maximum matching on
// general graphs, and Kuhn's augmenting-path algorithm for bipartite
// graphs given an explicit partition.
//
// The greedy pass is grounded on the teacher's tsp/matching.go
// (greedyMatch): take an unmatched vertex, pair it with its best remaining
// partner, repeat. The teacher's own matching step stops there — its
// blossomMatch is a placeholder returning ErrMatchingNotImplemented with a
// comment pointing at a real Edmonds/Blossom V implementation — so
// MaximumMatching here is a full replacement built from scratch (the
// classic O(V^3) augmenting-path-with-blossom-contraction formulation),
// not an adaptation of teacher code.
package match
