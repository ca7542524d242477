package clique

import "github.com/vertigraph/vertigraph/graph"

// MaximalCliques enumerates every maximal clique of g via Bron-Kerbosch
// with pivoting: at each step choose a pivot from P∪X maximizing overlap
// with P, and only branch on P's vertices not already adjacent to the
// pivot, sharply cutting the branching factor versus the pivot-free
// version.
func MaximalCliques(g Graph) [][]graph.NodeID {
	ids, adj := adjacencySets(g)
	n := len(ids)

	all := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		all[i] = true
	}

	var cliques [][]int
	var bk func(r, p, x map[int]bool)
	bk = func(r, p, x map[int]bool) {
		if len(p) == 0 && len(x) == 0 {
			clique := make([]int, 0, len(r))
			for v := range r {
				clique = append(clique, v)
			}
			cliques = append(cliques, clique)
			return
		}

		pivot := -1
		best := -1
		for v := range union(p, x) {
			count := 0
			for w := range p {
				if adj[v][w] {
					count++
				}
			}
			if count > best {
				best = count
				pivot = v
			}
		}

		candidates := make([]int, 0, len(p))
		for v := range p {
			if !adj[pivot][v] {
				candidates = append(candidates, v)
			}
		}

		for _, v := range candidates {
			nr := copyWith(r, v)
			np := intersect(p, adj[v])
			nx := intersect(x, adj[v])
			bk(nr, np, nx)
			delete(p, v)
			x[v] = true
		}
	}

	p := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		p[i] = true
	}
	bk(map[int]bool{}, p, map[int]bool{})

	out := make([][]graph.NodeID, len(cliques))
	for i, c := range cliques {
		ids2 := make([]graph.NodeID, len(c))
		for j, idx := range c {
			ids2[j] = ids[idx]
		}
		out[i] = ids2
	}
	return out
}

func union(a, b map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a)+len(b))
	for v := range a {
		out[v] = true
	}
	for v := range b {
		out[v] = true
	}
	return out
}

func intersect(a map[int]bool, b map[int]bool) map[int]bool {
	out := make(map[int]bool)
	for v := range a {
		if b[v] {
			out[v] = true
		}
	}
	return out
}

func copyWith(r map[int]bool, v int) map[int]bool {
	out := make(map[int]bool, len(r)+1)
	for k := range r {
		out[k] = true
	}
	out[v] = true
	return out
}
