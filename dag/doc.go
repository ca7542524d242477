// Package dag provides whole-graph operations specific to directed acyclic
// structure: back-edge cycle enumeration, transitive reduction, transitive
// closure, undirected cycle detection, and a thin re-export of topological
// ordering (component H of the core specification).
//
// Cycle enumeration is adapted from the teacher's dfs.DetectCycles: three-
// color DFS with back-edge detection, canonical minimal-rotation dedup via a
// Booth's-algorithm-style comparison, generalized from string vertex IDs to
// graph.NodeID, and walked over an explicit frame stack rather than
// recursion so stack depth tracks available memory, not the Go call stack.
// IsAcyclicUndirected runs the same shape of walk over undirected edges,
// skipping exactly one edge back to each node's parent before treating a
// revisit as a cycle. Transitive reduction and closure run their own
// topological sort of the input, so callers need not pre-sort it, then
// accumulate reachability bitsets in a reverse-topological sweep in the
// manner of petgraph's; the teacher has no equivalent.
package dag
