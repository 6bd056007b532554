// Package simplicial builds the 2-skeleton of the Čech and Vietoris–Rips
// complexes of a planar point set at a single radius.
//
// 🚀 What is it?
//
//	Center a disk of radius r on every point. Two points span an edge when
//	their disks overlap; three points span a triangle when
//	  • Čech: the three disks share a common point,
//	  • Rips: every pair of the three disks overlaps.
//	Both kinds share the same edges; Rips triangles are a superset of Čech
//	triangles.
//
// ⚙️ Usage:
//
//	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0.5, 0.8)}
//	res, err := simplicial.Build(pts, 0.6, simplicial.Cech)
//	if err != nil {
//	  // errors.Is(err, simplicial.ErrInvalidInput)
//	}
//	fmt.Println(res.Edges(), res.Triangles())
//
// Evaluation is pure: the Result depends only on (points, radius, kind) and
// is never updated in place. Callers that redraw on radius changes call Build
// again and use Diff to find what changed.
//
// Options:
//
//   - WithWorkers(n): spread the pair and triple scans over n goroutines.
//   - WithContext(ctx): abandon a long evaluation between rows.
//
// Complexity:
//
//   - Time:   O(N²) pair tests + O(N³) triple tests.
//   - Memory: O(E + T) for the output.
//
// Errors:
//
//   - ErrNegativeRadius, ErrNonFiniteRadius, ErrNonFiniteCoordinate,
//     ErrUnknownKind; all satisfy errors.Is(err, ErrInvalidInput).
package simplicial
