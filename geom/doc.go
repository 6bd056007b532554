// Package geom holds the planar primitives and the intersection predicates
// behind the Čech and Vietoris–Rips constructions.
//
// What:
//
//   - Point and Disk value types (a Disk is just a center and a radius).
//   - Overlap: the pairwise predicate, strict ‖c1−c2‖ < 2r.
//   - IntersectionPoints: circle–circle intersection with explicit guards.
//   - CommonPoint / Cech: do three closed disks share a point?
//   - Rips: do all three pairs overlap?
//   - EnclosingRadius: the radius at which a triple becomes a Čech triangle.
//
// Numeric policy:
//
//	Degenerate configurations (coincident centers, exact tangency, nested
//	circles) never produce NaN and never panic; they resolve to "no
//	intersection points" and the predicates fall back to false.
//
// Complexity: every predicate is O(1) time and memory.
package geom
