// Package hits computes HITS (Hyperlink-Induced Topic Search) hub and
// authority scores by power iteration: a node's authority is the sum of
// its inbound links' hub scores, and its hub score is the sum of its
// outbound links' authority scores, with both vectors L2-renormalized
// after every sweep. It mirrors pagerank's iterate-to-convergence-or-cap
// shape and, like pagerank, offers a goroutine-parallel variant built on
// golang.org/x/sync/errgroup, grounded the same way on gonum-gonum's
// graph/centrality data-parallel iteration.
package hits
