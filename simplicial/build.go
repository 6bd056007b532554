// SPDX-License-Identifier: MIT
// Package: cechrips/simplicial
//
// build.go — the complex builder: validation, enumeration and merge.
//
// Contract:
//   • Every unordered pair {i,j} is tested with geom.Overlap.
//   • Every unordered triple {i,j,k} is tested with the predicate of kind.
//   • The two scans are independent; no triple is skipped because an edge
//     is missing.
//   • Output order is lexicographic and does not depend on WithWorkers.
//
// Complexity:
//   • Time:   O(N²) + O(N³) predicate calls, O(1) each.
//   • Memory: O(N) row headers + O(E + T) output.

package simplicial

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/cechrips/geom"
)

const methodBuild = "Build"

// triplePredicate is the shape shared by geom.Cech and geom.Rips.
type triplePredicate func(c1, c2, c3 geom.Point, r float64) bool

// row holds the simplices whose smallest vertex is a given index.
type row struct {
	edges     []Edge
	triangles []Triangle
}

// Build evaluates the complex of the given kind on points at radius.
//
// Implementation:
//   - Stage 1: Validate radius, kind and coordinates; reject with a sentinel
//     wrapped in method context.
//   - Stage 2: Snapshot points so later caller mutation cannot race a worker.
//   - Stage 3: Scan row i (edges {i,j>i}, triangles {i,j>i,k>j}) for every i,
//     sequentially or across workers.
//   - Stage 4: Concatenate rows in index order and index them for lookups.
//
// Returns:
//   - *Result: immutable edge and triangle sets.
//
// Errors:
//   - ErrNonFiniteRadius, ErrNegativeRadius, ErrUnknownKind,
//     ErrNonFiniteCoordinate (all wrap ErrInvalidInput).
//   - ctx.Err() when the WithContext context is done before the scan ends.
//
// Fewer than two points yields no edges, fewer than three no triangles;
// neither is an error.
func Build(points []geom.Point, radius float64, kind Kind, opts ...Option) (*Result, error) {
	cfg := newBuildConfig(opts...)

	if err := validate(points, radius, kind); err != nil {
		return nil, err
	}

	pts := make([]geom.Point, len(points))
	copy(pts, points)

	triple := triplePredicate(geom.Cech)
	if kind == Rips {
		triple = geom.Rips
	}

	rows := make([]row, len(pts))
	if err := scanRows(cfg, len(pts), func(i int) {
		rows[i] = scanRow(pts, radius, triple, i)
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return newResult(kind, radius, len(pts), rows), nil
}

// validate applies the InvalidInput checks in a fixed priority order:
// radius, kind, then coordinates by ascending index.
func validate(points []geom.Point, radius float64, kind Kind) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return fmt.Errorf("%s: radius=%v: %w", methodBuild, radius, ErrNonFiniteRadius)
	}
	if radius < 0 {
		return fmt.Errorf("%s: radius=%v: %w", methodBuild, radius, ErrNegativeRadius)
	}
	if !kind.Valid() {
		return fmt.Errorf("%s: kind=%d: %w", methodBuild, int(kind), ErrUnknownKind)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("%s: point %d %v: %w", methodBuild, i, p, ErrNonFiniteCoordinate)
		}
	}
	return nil
}

// scanRow tests every pair and triple whose smallest index is i.
func scanRow(pts []geom.Point, r float64, triple triplePredicate, i int) row {
	var out row
	n := len(pts)
	for j := i + 1; j < n; j++ {
		if geom.Overlap(pts[i], pts[j], r) {
			out.edges = append(out.edges, Edge{I: i, J: j})
		}
	}
	for j := i + 1; j < n; j++ {
		for k := j + 1; k < n; k++ {
			if triple(pts[i], pts[j], pts[k], r) {
				out.triangles = append(out.triangles, Triangle{I: i, J: j, K: k})
			}
		}
	}
	return out
}

// scanRows calls fn for every row index in [0, n), on cfg.workers goroutines,
// and reports the context error if the context ends first. fn must only
// write to state owned by its row.
func scanRows(cfg buildConfig, n int, fn func(i int)) error {
	workers := cfg.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := cfg.ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	var (
		wg      sync.WaitGroup
		aborted atomic.Bool
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(first int) {
			defer wg.Done()
			for i := first; i < n; i += workers {
				if cfg.ctx.Err() != nil {
					aborted.Store(true)
					return
				}
				fn(i)
			}
		}(w)
	}
	wg.Wait()

	if aborted.Load() {
		return cfg.ctx.Err()
	}
	return nil
}
