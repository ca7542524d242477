// Package chordal runs maximum cardinality search (MCS) to produce a
// candidate elimination ordering, then applies the Tarjan-Yannakakis
// linear-time test to decide whether that ordering is in fact a perfect
// elimination ordering — which holds exactly when the input graph is
// chordal. MCS itself is implemented with the textbook bucket-queue
// structure (one bucket per currently-possible weight, entries left
// stale in old buckets rather than removed on every increment) instead
// of a general-purpose heap, matching how the algorithm is conventionally
// described and how its amortized O(V+E) bound is usually argued.
package chordal
