// Package graph defines the capability interfaces every concrete graph
// representation in this module is judged against.
//
// No algorithm in this module ever takes a concrete storage type directly;
// instead it declares the minimal conjunction of capabilities it needs
// (for example traverse.BFS only needs Neighbors and Visitable). This lets
// one algorithm run unchanged over graph/simple's adjacency-list storage,
// a user's own storage, or a filtered/reversed view of either.
package graph
