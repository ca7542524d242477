// Package labelprop assigns every node a community label by repeated
// majority vote over its k-hop neighborhood: each round, a node adopts
// the label held by the most members of the nodes reachable from it
// within k edges, ties broken toward the numerically smallest label so
// the result is deterministic. The k-hop neighborhoods are computed once
// via the teacher's own traverse.BFS (bounded with WithBFSMaxDepth)
// rather than reimplementing bounded breadth-first search here.
package labelprop
