// Package skeleton views the 1-skeleton of a complex as an undirected simple
// graph on point indices 0..N-1.
//
// What:
//
//   - Graph: thread-safe adjacency sets keyed by vertex index.
//   - FromResult: load the edges of a simplicial.Result.
//   - Components: connected components by breadth-first search.
//   - Cliques3: every 3-clique, i.e. the triangles of the flag complex
//     spanned by the edges. For a Rips result this equals Triangles().
//
// Complexity:
//
//   - AddEdge, HasEdge:  O(1).
//   - Neighbors:         O(d·log d).
//   - Components:        O(V + E).
//   - Cliques3:          O(Σ d²) ≤ O(V·Δ²).
//
// Errors:
//
//   - ErrVertexOutOfRange: an index outside [0, N).
//   - ErrLoopNotAllowed:   an edge from a vertex to itself.
//   - ErrNilResult:        FromResult(nil).
package skeleton
