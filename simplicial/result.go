package simplicial

import (
	"slices"
)

// Result is the outcome of one Build call: the edge set and the triangle set
// of the complex at a fixed radius. A Result is immutable; accessors return
// copies.
type Result struct {
	kind   Kind
	radius float64
	n      int

	edges     []Edge     // lexicographic order
	triangles []Triangle // lexicographic order

	edgeSet     map[Edge]struct{}
	triangleSet map[Triangle]struct{}
}

// newResult concatenates per-row output in row order. Each row is already
// sorted, so the concatenation is sorted too.
func newResult(kind Kind, radius float64, n int, rows []row) *Result {
	var ne, nt int
	for _, r := range rows {
		ne += len(r.edges)
		nt += len(r.triangles)
	}
	res := &Result{
		kind:        kind,
		radius:      radius,
		n:           n,
		edges:       make([]Edge, 0, ne),
		triangles:   make([]Triangle, 0, nt),
		edgeSet:     make(map[Edge]struct{}, ne),
		triangleSet: make(map[Triangle]struct{}, nt),
	}
	for _, r := range rows {
		res.edges = append(res.edges, r.edges...)
		res.triangles = append(res.triangles, r.triangles...)
	}
	for _, e := range res.edges {
		res.edgeSet[e] = struct{}{}
	}
	for _, t := range res.triangles {
		res.triangleSet[t] = struct{}{}
	}
	return res
}

// Kind returns the complex kind the Result was built with.
func (r *Result) Kind() Kind { return r.kind }

// Radius returns the disk radius the Result was built with.
func (r *Result) Radius() float64 { return r.radius }

// VertexCount returns the number of input points (0-simplices).
func (r *Result) VertexCount() int { return r.n }

// EdgeCount returns the number of edges.
func (r *Result) EdgeCount() int { return len(r.edges) }

// TriangleCount returns the number of triangles.
func (r *Result) TriangleCount() int { return len(r.triangles) }

// Edges returns a copy of the edges in lexicographic order.
// Complexity: O(E).
func (r *Result) Edges() []Edge {
	return slices.Clone(r.edges)
}

// Triangles returns a copy of the triangles in lexicographic order.
// Complexity: O(T).
func (r *Result) Triangles() []Triangle {
	return slices.Clone(r.triangles)
}

// HasEdge reports whether {i, j} is an edge, in either argument order.
// Complexity: O(1).
func (r *Result) HasEdge(i, j int) bool {
	_, ok := r.edgeSet[NewEdge(i, j)]
	return ok
}

// HasTriangle reports whether {i, j, k} is a triangle, in any argument order.
// Complexity: O(1).
func (r *Result) HasTriangle(i, j, k int) bool {
	_, ok := r.triangleSet[NewTriangle(i, j, k)]
	return ok
}

// EulerCharacteristic returns V − E + T of the 2-skeleton.
func (r *Result) EulerCharacteristic() int {
	return r.n - len(r.edges) + len(r.triangles)
}

// SubsetOf reports whether every edge and every triangle of r is also present
// in other. Kinds and radii are not compared.
// Complexity: O(E + T).
func (r *Result) SubsetOf(other *Result) bool {
	for e := range r.edgeSet {
		if _, ok := other.edgeSet[e]; !ok {
			return false
		}
	}
	for t := range r.triangleSet {
		if _, ok := other.triangleSet[t]; !ok {
			return false
		}
	}
	return true
}

// MissingFaces returns the triangles of r that have at least one side absent
// from r's edge set. For a well-formed complex the slice is empty.
// Complexity: O(T).
func (r *Result) MissingFaces() []Triangle {
	var out []Triangle
	for _, t := range r.triangles {
		for _, e := range t.Edges() {
			if _, ok := r.edgeSet[e]; !ok {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
