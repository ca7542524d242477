package pagerank

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vertigraph/vertigraph/graph"
)

// ParallelPageRank computes the same fixed-point as PageRank, but splits
// each sweep's per-node update across GOMAXPROCS goroutines via
// errgroup.Group: the previous sweep's score vector is read-only during a
// sweep, so each goroutine owns a disjoint slice of `next` and no
// synchronization is needed beyond the barrier at errgroup.Wait.
func ParallelPageRank(ctx context.Context, g Graph, opts ...Option) (*Result, error) {
	o := resolveOptions(opts)
	ls := buildLinkStructure(g)
	n := len(ls.ids)
	if n == 0 {
		return &Result{Scores: map[graph.NodeID]float64{}, Converged: true}, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	scores := uniformScores(n)
	next := make([]float64, n)

	converged := false
	iterations := 0
	for ; iterations < o.maxIterations; iterations++ {
		danglingMass := 0.0
		for i, deg := range ls.outDegree {
			if deg == 0 {
				danglingMass += scores[i]
			}
		}
		base := (1-o.damping)/float64(n) + o.damping*danglingMass/float64(n)

		eg, egCtx := errgroup.WithContext(ctx)
		chunk := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			if lo >= hi {
				continue
			}
			eg.Go(func() error {
				for i := lo; i < hi; i++ {
					select {
					case <-egCtx.Done():
						return egCtx.Err()
					default:
					}
					sum := 0.0
					for _, j := range ls.inbound[i] {
						sum += scores[j] / float64(ls.outDegree[j])
					}
					next[i] = base + o.damping*sum
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}

		delta := l1Distance(scores, next)
		copy(scores, next)
		if delta < o.tolerance {
			converged = true
			iterations++
			break
		}
	}

	return buildResult(ls, scores, iterations, converged), nil
}
