package match

import "github.com/vertigraph/vertigraph/graph"

// MaximumMatching computes a maximum-cardinality matching on a general
// (not-necessarily-bipartite) undirected graph via Edmonds' blossom
// algorithm: repeatedly search for an augmenting path from each unmatched
// vertex, contracting odd-length alternating cycles ("blossoms") into a
// single super-vertex whenever the search's BFS frontier meets itself,
// since an odd cycle would otherwise confuse the alternating-path parity
// the search relies on. Runs in O(V^3).
//
// Internally the search runs over g's dense node indices (via
// NodeCompactIndexable) rather than NodeID directly, since the blossom
// contraction needs O(1) union-like reassignment of a vertex's current
// "base" — the representative of the blossom it has been folded into.
func MaximumMatching(g Graph) *Matching {
	n := g.NodeBound()
	adj := make([][]int, n)
	nodes := graph.NodesOf(g.Nodes())
	for _, node := range nodes {
		u := g.ToIndex(node.ID())
		nbrs := g.Neighbors(node.ID())
		for nbrs.Next() {
			v := g.ToIndex(nbrs.Node().ID())
			if v != u {
				adj[u] = append(adj[u], v)
			}
		}
	}

	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}

	bs := &blossomSearch{adj: adj, match: match, n: n}
	for v := 0; v < n; v++ {
		if match[v] == -1 {
			u := bs.findPath(v)
			for u != -1 {
				pv := bs.p[u]
				ppv := match[pv]
				match[u] = pv
				match[pv] = u
				u = ppv
			}
		}
	}

	m := newMatching()
	for u, v := range match {
		if v == -1 || u >= v {
			continue
		}
		uid, _ := g.FromIndex(u)
		vid, _ := g.FromIndex(v)
		m.pair(uid, vid)
	}
	return m
}

type blossomSearch struct {
	adj     [][]int
	match   []int
	n       int
	used    []bool
	p       []int
	base    []int
	blossom []bool
}

func (bs *blossomSearch) lca(a, b int) int {
	seen := make([]bool, bs.n)
	for {
		a = bs.base[a]
		seen[a] = true
		if bs.match[a] == -1 {
			break
		}
		a = bs.p[bs.match[a]]
	}
	for {
		b = bs.base[b]
		if seen[b] {
			return b
		}
		b = bs.p[bs.match[b]]
	}
}

func (bs *blossomSearch) markPath(v, b, child int) {
	for bs.base[v] != b {
		bs.blossom[bs.base[v]] = true
		bs.blossom[bs.base[bs.match[v]]] = true
		bs.p[v] = child
		child = bs.match[v]
		v = bs.p[bs.match[v]]
	}
}

func (bs *blossomSearch) findPath(root int) int {
	bs.used = make([]bool, bs.n)
	bs.p = make([]int, bs.n)
	for i := range bs.p {
		bs.p[i] = -1
	}
	bs.base = make([]int, bs.n)
	for i := range bs.base {
		bs.base[i] = i
	}

	bs.used[root] = true
	queue := []int{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, to := range bs.adj[v] {
			if bs.base[v] == bs.base[to] || bs.match[v] == to {
				continue
			}
			if to == root || (bs.match[to] != -1 && bs.p[bs.match[to]] != -1) {
				curbase := bs.lca(v, to)
				bs.blossom = make([]bool, bs.n)
				bs.markPath(v, curbase, to)
				bs.markPath(to, curbase, v)
				for i := 0; i < bs.n; i++ {
					if bs.blossom[bs.base[i]] {
						bs.base[i] = curbase
						if !bs.used[i] {
							bs.used[i] = true
							queue = append(queue, i)
						}
					}
				}
			} else if bs.p[to] == -1 {
				bs.p[to] = v
				if bs.match[to] == -1 {
					return to
				}
				bs.used[bs.match[to]] = true
				queue = append(queue, bs.match[to])
			}
		}
	}
	return -1
}
