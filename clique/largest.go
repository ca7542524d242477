package clique

import "github.com/vertigraph/vertigraph/graph"

// LargestClique finds a single maximum clique via branch-and-bound in
// the style of McCreesh & Prosser's solver: candidates are greedily
// colored (vertices sharing a color are pairwise non-adjacent, so a color
// class contributes at most one vertex to any clique), sorted by
// ascending color, and the search is pruned whenever the current clique
// size plus the remaining color count cannot beat the best found so far
// — an admissible upper bound that lets the search terminate early
// without exploring the full candidate set.
func LargestClique(g Graph) []graph.NodeID {
	ids, adj := adjacencySets(g)
	n := len(ids)
	if n == 0 {
		return nil
	}

	var best []int
	var current []int

	var expand func(candidates []int)
	expand = func(candidates []int) {
		colors := colorSort(candidates, adj)
		for i := len(candidates) - 1; i >= 0; i-- {
			if len(current)+colors[i] <= len(best) {
				return
			}
			v := candidates[i]
			current = append(current, v)

			next := make([]int, 0, i)
			for _, u := range candidates[:i] {
				if adj[v][u] {
					next = append(next, u)
				}
			}

			if len(next) == 0 {
				if len(current) > len(best) {
					best = append([]int(nil), current...)
				}
			} else {
				expand(next)
			}
			current = current[:len(current)-1]
		}
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	expand(all)

	out := make([]graph.NodeID, len(best))
	for i, idx := range best {
		out[i] = ids[idx]
	}
	return out
}

// colorSort greedily colors candidates (a color class is an independent
// set) and returns, for each candidate in ascending-color order (the
// slice is reordered in place), the number of distinct colors used among
// candidates up to and including that position — the upper bound on
// clique size achievable from the remaining suffix.
func colorSort(candidates []int, adj []map[int]bool) []int {
	colorOf := make(map[int]int, len(candidates))
	numColors := 0

	remaining := append([]int(nil), candidates...)
	for len(remaining) > 0 {
		numColors++
		used := make(map[int]bool)
		var stillRemaining []int
		for _, v := range remaining {
			conflict := false
			for w := range used {
				if adj[v][w] {
					conflict = true
					break
				}
			}
			if !conflict {
				colorOf[v] = numColors
				used[v] = true
			} else {
				stillRemaining = append(stillRemaining, v)
			}
		}
		remaining = stillRemaining
	}

	ordered := append([]int(nil), candidates...)
	bound := make([]int, len(ordered))
	// Stable sort by color ascending so higher-color (more constrained)
	// vertices are explored first when iterating from the end.
	for i := 1; i < len(ordered); i++ {
		key := ordered[i]
		j := i - 1
		for j >= 0 && colorOf[ordered[j]] > colorOf[key] {
			ordered[j+1] = ordered[j]
			j--
		}
		ordered[j+1] = key
	}
	copy(candidates, ordered)
	for i, v := range candidates {
		bound[i] = colorOf[v]
	}
	return bound
}
