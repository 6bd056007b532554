package skeleton

import (
	"slices"

	"github.com/katalvlaran/cechrips/geom"
	"github.com/katalvlaran/cechrips/simplicial"
)

// SpanningTree returns the Euclidean minimum spanning tree of points and
// the connectivity threshold: the 1-skeleton at radius r is connected iff
// n ≤ 1 or r > threshold.
//
// Steps:
//  1. Enumerate all C(n,2) pairs with their distances.
//  2. Stable-sort by distance, ties broken by (I, J).
//  3. Kruskal over a disjoint-set with path halving and union by rank.
//  4. threshold = longest tree edge / 2.
//
// Complexity: O(n² log n). Memory: O(n²).
func SpanningTree(points []geom.Point) (tree []simplicial.Edge, threshold float64) {
	n := len(points)
	if n < 2 {
		return nil, 0
	}

	type weighted struct {
		e simplicial.Edge
		d float64
	}
	pairs := make([]weighted, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, weighted{simplicial.Edge{I: i, J: j}, geom.Dist(points[i], points[j])})
		}
	}
	slices.SortStableFunc(pairs, func(a, b weighted) int {
		switch {
		case a.d < b.d:
			return -1
		case a.d > b.d:
			return 1
		}
		return 0
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	tree = make([]simplicial.Edge, 0, n-1)
	var longest float64
	for _, p := range pairs {
		ru, rv := find(p.e.I), find(p.e.J)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		tree = append(tree, p.e)
		longest = p.d
		if len(tree) == n-1 {
			break
		}
	}

	return tree, longest / 2
}
