package simplicial

// Delta lists what changed between two evaluations. Rendering layers apply a
// Delta to their scene instead of rebuilding every primitive.
type Delta struct {
	AddedEdges       []Edge
	RemovedEdges     []Edge
	AddedTriangles   []Triangle
	RemovedTriangles []Triangle
}

// Empty reports whether the two evaluations had identical simplices.
func (d Delta) Empty() bool {
	return len(d.AddedEdges) == 0 && len(d.RemovedEdges) == 0 &&
		len(d.AddedTriangles) == 0 && len(d.RemovedTriangles) == 0
}

// Diff compares prev and next. A nil prev is treated as the empty complex, so
// Diff(nil, res) adds everything in res; a nil next removes everything in prev.
// All slices are in lexicographic order.
// Complexity: O(E + T) of both results.
func Diff(prev, next *Result) Delta {
	var d Delta
	if prev == nil {
		prev = &Result{}
	}
	if next == nil {
		next = &Result{}
	}

	for _, e := range next.edges {
		if _, ok := prev.edgeSet[e]; !ok {
			d.AddedEdges = append(d.AddedEdges, e)
		}
	}
	for _, e := range prev.edges {
		if _, ok := next.edgeSet[e]; !ok {
			d.RemovedEdges = append(d.RemovedEdges, e)
		}
	}
	for _, t := range next.triangles {
		if _, ok := prev.triangleSet[t]; !ok {
			d.AddedTriangles = append(d.AddedTriangles, t)
		}
	}
	for _, t := range prev.triangles {
		if _, ok := next.triangleSet[t]; !ok {
			d.RemovedTriangles = append(d.RemovedTriangles, t)
		}
	}
	return d
}
