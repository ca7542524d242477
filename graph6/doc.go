// Package graph6 reads and writes the graph6 ASCII format for simple
// undirected graphs: a graph order field, encoding the node count in
// either 6 bits (orders below 63) or 18 bits (orders up to 258047,
// preceded by the literal value 63), followed by the upper triangle of
// the adjacency matrix packed 6 bits per byte. Every byte, in either
// field, is then offset by 63 so the whole string stays printable
// ASCII — the format devised by Brendan McKay and used by nauty and
// most graph databases to exchange small graphs as a single line of
// text.
//
// Only adjacency is represented: node data, edge weights, and
// direction are not part of the format, matching its "simple
// undirected graph" scope. This mirrors the teacher's own format
// adapters (matrix.ToMatrix, matrix.ToEdgeList) — a thin, dependency-free
// conversion layer sitting outside the core capability graph rather
// than a capability itself.
package graph6
