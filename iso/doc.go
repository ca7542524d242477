// Package iso decides graph and subgraph isomorphism via the VF2
// algorithm (Cordella, Foggia, Sansone, Vento): a recursive backtracking
// search building a node-to-node mapping one pair at a time, pruned by
// degree and adjacency-consistency checks against the partial mapping
// built so far.
//
// Grounded on original_source/algorithms/src/isomorphism/{mod,state}.rs,
// which drives the same search over a Vf2State pair and an optional
// semantic (node_match, edge_match) pair. The Rust state machine's
// look-ahead term counts (the "1-look-ahead"/"2-look-ahead" terminal
// sets used to prune before the frontier is exhausted) are traded here
// for a simpler check of each candidate's adjacency to every node already
// in the mapping via AdjacencyWitness — asymptotically weaker pruning, but a
// faithful, idiomatic-Go rendition of the same backtracking shape
// without porting the Rust implementation's internal frontier
// bookkeeping line for line.
//
// Subgraph isomorphism here is the monomorphism reading VF2's own
// documentation calls out as the alternative to node-induced subgraph
// isomorphism: every edge of the pattern must have a corresponding edge
// in the target under the mapping, but the target may have additional
// edges between mapped nodes that the pattern lacks. Full induced
// subgraph isomorphism (requiring non-edges to match too) is not
// implemented; IsIsomorphicSubgraph's doc comment says so explicitly.
package iso
