// SPDX-License-Identifier: MIT
// Package: cechrips/geom
//
// predicates.go — pairwise and triple predicates over equal-radius disks.
//
// Contract:
//   • All predicates are pure and total over finite inputs.
//   • Symmetric under any permutation of the centers.
//   • Monotone non-decreasing in r.
//   • Never return a value derived from NaN; degeneracy resolves to false.

package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cornerSlack is the relative tolerance applied when a constructed lens
// corner is tested against the third disk. Corners lie on two boundary
// circles by construction, so rounding alone can push an exact boundary
// contact a few ulps outside.
const cornerSlack = 1e-12

// Overlap reports whether the open disks of radius r centered at c1 and c2
// overlap, i.e. ‖c1−c2‖ < r + r.
//
// Behavior highlights:
//   - Tangent disks (‖c1−c2‖ == 2r) do NOT overlap.
//   - r == 0 never overlaps, not even for coincident centers.
//
// Complexity: O(1).
func Overlap(c1, c2 Point, r float64) bool {
	return Dist(c1, c2) < r+r
}

// DisksOverlap is Overlap for disks of arbitrary radii: ‖ca−cb‖ < ra + rb.
// Complexity: O(1).
func DisksOverlap(a, b Disk) bool {
	return Dist(a.Center, b.Center) < a.Radius+b.Radius
}

// IntersectionPoints returns the two points where the boundary circles of a
// and b cross.
//
// Algorithm:
//  1. d = ‖cb − ca‖, u = (cb − ca)/d.
//  2. t = (ra² − rb² + d²) / (2d), the signed offset of the common chord along u.
//  3. h = sqrt(max(0, ra² − t²)), the half-chord length.
//  4. M = ca + t·u; p, q = M ± h·perp(u).
//
// ok is false, and p, q are zero, whenever the construction is undefined:
// coincident centers, disjoint or externally tangent circles (d ≥ ra + rb),
// and one circle nested inside the other (d ≤ |ra − rb|). A negative ra² − t²
// caused by rounding near tangency is clamped to zero.
//
// Complexity: O(1).
func IntersectionPoints(a, b Disk) (p, q Point, ok bool) {
	v := b.Center.Vec().Sub(a.Center.Vec())
	d := v.Len()
	// !(d < sum) also rejects NaN distances.
	if !(d < a.Radius+b.Radius) || d <= math.Abs(a.Radius-b.Radius) {
		return Point{}, Point{}, false
	}

	u := v.Mul(1 / d)
	ra2, rb2 := a.Radius*a.Radius, b.Radius*b.Radius
	t := (ra2 - rb2 + d*d) / (2 * d)
	h2 := ra2 - t*t
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	m := a.Center.Vec().Add(u.Mul(t))
	perp := mgl64.Vec2{-u.Y(), u.X()}

	return fromVec(m.Add(perp.Mul(h))), fromVec(m.Sub(perp.Mul(h))), true
}

// CommonPoint reports whether the closed disks a, b and c share at least one
// point.
//
// The intersection of three disks, when non-empty, is either a whole disk
// nested in the other two, or a convex region with a corner where two of the
// boundary circles cross. CommonPoint therefore:
//  1. accepts if some disk lies inside both others;
//  2. otherwise, for every pair taken as base pair, computes the pair's
//     intersection points and accepts if one of them lies in the third disk.
//
// Degenerate base pairs (see IntersectionPoints) are skipped rather than
// failing, so the answer does not depend on argument order.
//
// Complexity: O(1), at most three circle–circle constructions.
func CommonPoint(a, b, c Disk) bool {
	disks := [3]Disk{a, b, c}
	for i := 0; i < 3; i++ {
		d, o1, o2 := disks[i], disks[(i+1)%3], disks[(i+2)%3]
		if d.inside(o1) && d.inside(o2) {
			return true
		}
	}
	for i := 0; i < 3; i++ {
		base1, base2, other := disks[i], disks[(i+1)%3], disks[(i+2)%3]
		p, q, ok := IntersectionPoints(base1, base2)
		if !ok {
			continue
		}
		if other.containsWithin(p, cornerSlack) || other.containsWithin(q, cornerSlack) {
			return true
		}
	}
	return false
}

// Cech reports whether the triple {c1, c2, c3} spans a Čech triangle at
// radius r: every pair of radius-r disks overlaps and the three closed disks
// have a common point.
//
// The pairwise requirement keeps the boundary consistent with Overlap: three
// disks may share a single boundary point while two of them are merely
// tangent, and such a triple has no edge to sit on.
//
// Complexity: O(1).
func Cech(c1, c2, c3 Point, r float64) bool {
	if !Rips(c1, c2, c3, r) {
		return false
	}
	return CommonPoint(DiskAt(c1, r), DiskAt(c2, r), DiskAt(c3, r))
}

// Rips reports whether the triple {c1, c2, c3} spans a Vietoris–Rips
// triangle at radius r: Overlap holds for (1,2), (2,3) and (1,3).
// Complexity: O(1).
func Rips(c1, c2, c3 Point, r float64) bool {
	return Overlap(c1, c2, r) && Overlap(c2, c3, r) && Overlap(c1, c3, r)
}
