// Package community computes modularity for a caller-supplied partition
// and detects communities via the Louvain method: a local-moving phase
// that greedily reassigns each node to whichever neighboring community
// most increases modularity, followed by an aggregation phase that
// collapses each community into a single super-node and repeats, until
// a pass produces no further merge. Partition validation (every node
// assigned to exactly one subset) reuses the module's shared gerr.NotAPartition
// error rather than a package-local variant.
package community
