// Package gen builds deterministic, well-known graph topologies —
// cycles, paths, stars, wheels, complete and complete bipartite graphs,
// orthogonal grids, and two random families (Erdős-Rényi-style sparse
// graphs and stub-matched regular graphs) — against any storage that
// implements the core capability graph's Create contract (AddNode,
// AddEdge, IsDirected).
//
// Each generator adds to a graph the caller already created (typically
// via graph/simple.New(...)) and returns the node IDs it assigned, in
// the same deterministic emission order the teacher's builder package
// documents per topology (ascending index for Cycle/Path/Complete,
// row-major for Grid, and so on) — generation never invents its own ID
// scheme the way the teacher's string "0".."n-1" or "r,c" conventions
// do, since the capability graph's NodeID is opaque and assigned by
// the storage itself.
//
// Every generator validates its size/probability/mode parameters
// before mutating the graph and reports violations as one of this
// package's sentinel errors, exactly the teacher's validation-then-sentinel
// discipline in builder/errors.go; weight assignment follows the same
// WeightFunc-over-an-optional-RNG shape as the teacher's weight_fn.go,
// renamed to this module's capability types.
package gen
