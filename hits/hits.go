package hits

import (
	"math"

	"github.com/vertigraph/vertigraph/graph"
)

// HITS computes hub and authority scores for every node in g. Each sweep
// recomputes authority as the sum of inbound links' previous hub scores
// and hub as the sum of outbound links' previous authority scores, then
// L2-renormalizes both vectors so the iteration converges to a fixed
// point rather than growing unboundedly. Iteration stops once the L1
// delta across both vectors falls under tolerance, or the iteration cap
// is reached.
func HITS(g Graph, opts ...Option) *Result {
	o := resolveOptions(opts)
	ls := buildLinkStructure(g)
	n := len(ls.ids)
	if n == 0 {
		return &Result{Hub: map[graph.NodeID]float64{}, Authority: map[graph.NodeID]float64{}, Converged: true}
	}

	hub := uniform(n)
	authority := uniform(n)
	nextHub := make([]float64, n)
	nextAuthority := make([]float64, n)

	converged := false
	iterations := 0
	for ; iterations < o.maxIterations; iterations++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for _, j := range ls.inbound[i] {
				sum += hub[j]
			}
			nextAuthority[i] = sum
		}
		for i := 0; i < n; i++ {
			sum := 0.0
			for _, j := range ls.outbound[i] {
				sum += authority[j]
			}
			nextHub[i] = sum
		}
		normalize(nextAuthority)
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

	return buildResult(ls, hub, authority, iterations, converged)
}

func uniform(n int) []float64 {
	v := make([]float64, n)
	mass := 1.0 / math.Sqrt(float64(n))
	for i := range v {
		v[i] = mass
	}
	return v
}

func normalize(v []float64) {
	sumSquares := 0.0
	for _, x := range v {
		sumSquares += x * x
	}
	if sumSquares == 0 {
		return
	}
	norm := math.Sqrt(sumSquares)
	for i := range v {
		v[i] /= norm
	}
}

func l1Distance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

func buildResult(ls *linkStructure, hub, authority []float64, iterations int, converged bool) *Result {
	hubOut := make(map[graph.NodeID]float64, len(ls.ids))
	authOut := make(map[graph.NodeID]float64, len(ls.ids))
	for i, id := range ls.ids {
		hubOut[id] = hub[i]
		authOut[id] = authority[i]
	}
	return &Result{Hub: hubOut, Authority: authOut, Iterations: iterations, Converged: converged}
}
