// Package gerr defines the typed error taxonomy every algorithm package in
// this module returns: Cycle, NegativeCycle, NegativeWeight, NodeNotFound,
// NotAPartition, EdgesNotSorted, and WouldCycle.
//
// The teacher (lvlath) uses one sentinel errors.New value per failure mode
// per package (core.ErrVertexNotFound, dijkstra.ErrNegativeWeight,
// dfs.ErrCycleDetected, ...). That idiom survives here for failures with no
// payload; the handful of errors spec §7 requires structured fields for
// (the offending node, the first out-of-order pair, the rejected edges) get
// a small struct type instead, wrapped with fmt.Errorf("%w: ...") exactly
// the way the teacher wraps its sentinels, so errors.Is/errors.As keep
// composing for callers.
package gerr
