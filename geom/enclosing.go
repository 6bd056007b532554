package geom

import "math"

// Circumradius returns the radius of the circle through a, b and c.
// ok is false for collinear (including coincident) points, where no such
// circle exists.
//
// R = |ab|·|bc|·|ca| / (4·area).
// Complexity: O(1).
func Circumradius(a, b, c Point) (radius float64, ok bool) {
	ab := b.Vec().Sub(a.Vec())
	ac := c.Vec().Sub(a.Vec())
	cross := ab.X()*ac.Y() - ab.Y()*ac.X()
	if cross == 0 {
		return 0, false
	}
	area := math.Abs(cross) / 2

	return Dist(a, b) * Dist(b, c) * Dist(c, a) / (4 * area), true
}

// EnclosingRadius returns the radius of the smallest circle containing a, b
// and c. Three closed disks of radius r centered at a, b, c share a point iff
// r ≥ EnclosingRadius(a, b, c), which makes it the exact Čech threshold of a
// triple.
//
// Behavior:
//   - Right, obtuse or degenerate triangles: half the longest side.
//   - Acute triangles: the circumradius.
//
// Complexity: O(1).
func EnclosingRadius(a, b, c Point) float64 {
	s := [3]float64{dist2(b, c), dist2(c, a), dist2(a, b)}
	longest := 0
	for i := 1; i < 3; i++ {
		if s[i] > s[longest] {
			longest = i
		}
	}
	rest := s[(longest+1)%3] + s[(longest+2)%3]
	if s[longest] >= rest {
		return math.Sqrt(s[longest]) / 2
	}
	if r, ok := Circumradius(a, b, c); ok {
		return r
	}

	return math.Sqrt(s[longest]) / 2
}

// PairThreshold returns the infimum of radii at which Overlap(a, b, r) holds:
// half the distance between the centers. Overlap itself is strict, so the
// edge appears for every r > PairThreshold(a, b).
// Complexity: O(1).
func PairThreshold(a, b Point) float64 {
	return Dist(a, b) / 2
}
