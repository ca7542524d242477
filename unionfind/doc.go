// Package unionfind implements a disjoint-set forest with union-by-rank
// and path compression, the shared scratch structure behind Kruskal's MST,
// connected-components, and cycle checks during incremental edge insertion.
//
// Pulled out of the teacher's prim_kruskal package (which kept the same
// bookkeeping inline) into its own reusable type per spec §4.B, so that
// any algorithm needing a disjoint-set domain can use one without
// reimplementing path compression.
package unionfind
