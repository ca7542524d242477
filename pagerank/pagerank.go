package pagerank

import "github.com/vertigraph/vertigraph/graph"

// PageRank computes PageRank scores for every node in g by power
// iteration: at each sweep a node's new score is (1-damping)/n plus
// damping times the sum, over every inbound link, of the linking node's
// previous score divided by its out-degree. Nodes with no outbound links
// ("dangling" nodes) redistribute their entire mass uniformly across all
// nodes on the following sweep, so the total rank mass stays 1
// regardless of sinks.
//
// Iteration stops once the L1 distance between successive score vectors
// falls under the configured tolerance, or the iteration cap is reached,
// whichever comes first.
func PageRank(g Graph, opts ...Option) *Result {
	o := resolveOptions(opts)
	ls := buildLinkStructure(g)
	n := len(ls.ids)
	if n == 0 {
		return &Result{Scores: map[graph.NodeID]float64{}, Converged: true}
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

		for i := 0; i < n; i++ {
			sum := 0.0
			for _, j := range ls.inbound[i] {
				sum += scores[j] / float64(ls.outDegree[j])
			}
			next[i] = base + o.damping*sum
		}

		delta := l1Distance(scores, next)
		copy(scores, next)
		if delta < o.tolerance {
			converged = true
			iterations++
			break
		}
	}

	return buildResult(ls, scores, iterations, converged)
}

func uniformScores(n int) []float64 {
	scores := make([]float64, n)
	mass := 1.0 / float64(n)
	for i := range scores {
		scores[i] = mass
	}
	return scores
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

func buildResult(ls *linkStructure, scores []float64, iterations int, converged bool) *Result {
	out := make(map[graph.NodeID]float64, len(ls.ids))
	for i, id := range ls.ids {
		out[id] = scores[i]
	}
	return &Result{Scores: out, Iterations: iterations, Converged: converged}
}
