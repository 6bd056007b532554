package skeleton

import (
	"slices"

	"github.com/katalvlaran/cechrips/simplicial"
)

// Components returns the connected components of g. Each component lists its
// vertices in ascending order; components are ordered by their smallest
// vertex. An isolated vertex is a component of its own.
//
// Time:   O(V + E·log Δ).
// Memory: O(V) for the visited flags and the queue.
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency)
	seen := make([]bool, n)
	var comps [][]int

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.sortedNeighbors(u) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}
	return comps
}

// Cliques3 returns every triple of pairwise adjacent vertices as a canonical
// simplicial.Triangle, in lexicographic order.
//
// Time: O(Σ_v d(v)²).
func (g *Graph) Cliques3() []simplicial.Triangle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []simplicial.Triangle
	for i := range g.adjacency {
		nbrs := g.sortedNeighbors(i)
		for a, j := range nbrs {
			if j < i {
				continue
			}
			for _, k := range nbrs[a+1:] {
				if _, ok := g.adjacency[j][k]; ok {
					out = append(out, simplicial.Triangle{I: i, J: j, K: k})
				}
			}
		}
	}
	return out
}
