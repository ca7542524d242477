// Package visitmap implements the per-traversal visited-set contract
// (graph.VisitMap) every traversal and shortest-path algorithm in this
// module shares as reusable scratch state.
//
// Two implementations are provided: Dense, a bitset keyed by a
// NodeCompactIndexable graph's dense index (backed by
// golang.org/x/tools/container/intsets for compact storage), and Hash, a
// plain map keyed by graph.NodeID for graphs that cannot (or choose not to)
// offer a compact index. Algorithms never assume which one they were given;
// they only call Visit, IsVisited, and Clear.
package visitmap
