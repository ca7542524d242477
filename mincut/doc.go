// Package mincut computes a global minimum cut of an undirected weighted
// graph via the Stoer-Wagner algorithm: repeated maximum-adjacency
// search phases, each contracting the two vertices added last into a
// single super-vertex and recording the phase's cut weight, until one
// vertex remains. The minimum across all phases' cut weights is the
// graph's global minimum cut.
//
// This is a different problem from the module's existing s-t minimum
// cut (flow.MinCut, derived from max-flow/min-cut duality on a
// directed capacitated graph): here there is no source or sink, the
// graph is undirected, and the cut partitions all nodes into exactly
// two nonempty sets at minimum total crossing weight. The dense n×n
// adjacency matrix this algorithm conventionally operates on mirrors
// chordal's own dense adjacency build for maximum cardinality search —
// both algorithms repeatedly need "total weight from a vertex to an
// already-processed set," which a matrix answers in O(1) per lookup.
package mincut
