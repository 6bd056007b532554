package skeleton

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/cechrips/simplicial"
)

// Sentinel errors for skeleton operations.
var (
	// ErrVertexOutOfRange indicates an index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("skeleton: vertex index out of range")

	// ErrLoopNotAllowed indicates an attempt to join a vertex to itself.
	ErrLoopNotAllowed = errors.New("skeleton: self-loop not allowed")

	// ErrNilResult indicates FromResult was given a nil complex.
	ErrNilResult = errors.New("skeleton: result is nil")
)

// Graph is an undirected simple graph on the fixed vertex set 0..n-1.
// mu guards adjacency and edges.
type Graph struct {
	mu        sync.RWMutex
	adjacency []map[int]struct{}
	edges     int
}

// New returns an edgeless graph on n vertices. Negative n is treated as 0.
// Complexity: O(n).
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adjacency: make([]map[int]struct{}, n)}
	for i := range g.adjacency {
		g.adjacency[i] = make(map[int]struct{})
	}
	return g
}

// FromResult returns the 1-skeleton of res: one vertex per input point and
// one edge per complex edge.
// Complexity: O(V + E).
func FromResult(res *simplicial.Result) (*Graph, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	g := New(res.VertexCount())
	for _, e := range res.Edges() {
		if err := g.AddEdge(e.I, e.J); err != nil {
			return nil, fmt.Errorf("FromResult: %w", err)
		}
	}
	return g, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// checkVertex validates i against the vertex range; callers hold mu.
func (g *Graph) checkVertex(i int) error {
	if i < 0 || i >= len(g.adjacency) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", i, len(g.adjacency), ErrVertexOutOfRange)
	}
	return nil
}

// AddEdge joins i and j. Adding an existing edge is a no-op.
// Complexity: O(1).
func (g *Graph) AddEdge(i, j int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(i); err != nil {
		return err
	}
	if err := g.checkVertex(j); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("vertex %d: %w", i, ErrLoopNotAllowed)
	}
	if _, ok := g.adjacency[i][j]; ok {
		return nil
	}
	g.adjacency[i][j] = struct{}{}
	g.adjacency[j][i] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether i and j are adjacent. Out-of-range indices are
// simply not adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(i, j int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.checkVertex(i) != nil || g.checkVertex(j) != nil {
		return false
	}
	_, ok := g.adjacency[i][j]
	return ok
}

// Neighbors returns the neighbors of i in ascending order.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(i int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(i); err != nil {
		return nil, err
	}
	return g.sortedNeighbors(i), nil
}

// sortedNeighbors is Neighbors without locking or validation; callers hold mu.
func (g *Graph) sortedNeighbors(i int) []int {
	out := make([]int, 0, len(g.adjacency[i]))
	for j := range g.adjacency[i] {
		out = append(out, j)
	}
	slices.Sort(out)
	return out
}

// Degree returns the number of neighbors of i.
// Complexity: O(1).
func (g *Graph) Degree(i int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(i); err != nil {
		return 0, err
	}
	return len(g.adjacency[i]), nil
}
