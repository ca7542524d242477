package hits

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vertigraph/vertigraph/graph"
)

// ParallelHITS computes the same fixed point as HITS, splitting each
// sweep's authority pass and hub pass across GOMAXPROCS goroutines via
// errgroup.Group. Both passes read only the previous sweep's vectors and
// write disjoint output slices, so no synchronization is needed beyond
// the barrier at the end of each pass.
func ParallelHITS(ctx context.Context, g Graph, opts ...Option) (*Result, error) {
	o := resolveOptions(opts)
	ls := buildLinkStructure(g)
	n := len(ls.ids)
	if n == 0 {
		return &Result{Hub: map[graph.NodeID]float64{}, Authority: map[graph.NodeID]float64{}, Converged: true}, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	hub := uniform(n)
	authority := uniform(n)
	nextHub := make([]float64, n)
	nextAuthority := make([]float64, n)

	runSweep := func(ctx context.Context, compute func(i int) float64, out []float64) error {
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
					out[i] = compute(i)
				}
				return nil
			})
		}
		return eg.Wait()
	}

	converged := false
	iterations := 0
	for ; iterations < o.maxIterations; iterations++ {
		if err := runSweep(ctx, func(i int) float64 {
			sum := 0.0
			for _, j := range ls.inbound[i] {
				sum += hub[j]
			}
			return sum
		}, nextAuthority); err != nil {
			return nil, err
		}
		normalize(nextAuthority)

		if err := runSweep(ctx, func(i int) float64 {
			sum := 0.0
			for _, j := range ls.outbound[i] {
				sum += authority[j]
			}
			return sum
		}, nextHub); err != nil {
			return nil, err
		}
		normalize(nextHub)

		delta := l1Distance(hub, nextHub) + l1Distance(authority, nextAuthority)
		copy(hub, nextHub)
		copy(authority, nextAuthority)
		if delta < o.tolerance {
			converged = true
			iterations++
			break
		}
	}

	return buildResult(ls, hub, authority, iterations, converged), nil
}
