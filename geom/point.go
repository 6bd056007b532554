package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is an immutable location in the plane.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns p as a mathgl 2-vector.
func (p Point) Vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// fromVec converts a mathgl 2-vector back into a Point.
func fromVec(v mgl64.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Dist returns the Euclidean distance ‖a−b‖.
// Complexity: O(1).
func Dist(a, b Point) float64 {
	return b.Vec().Sub(a.Vec()).Len()
}

// dist2 returns the squared Euclidean distance ‖a−b‖².
func dist2(a, b Point) float64 {
	v := b.Vec().Sub(a.Vec())
	return v.Dot(v)
}

// Disk is a center together with a radius. The complex builders never store
// disks; they derive them from a point and the shared radius on demand.
type Disk struct {
	Center Point
	Radius float64
}

// DiskAt is shorthand for Disk{Center: c, Radius: r}.
func DiskAt(c Point, r float64) Disk {
	return Disk{Center: c, Radius: r}
}

// ContainsClosed reports whether p lies inside or on the boundary of d:
// (x−cx)² + (y−cy)² ≤ r².
func (d Disk) ContainsClosed(p Point) bool {
	return dist2(d.Center, p) <= d.Radius*d.Radius
}

// containsWithin is ContainsClosed with the squared radius inflated by the
// relative tolerance rel.
func (d Disk) containsWithin(p Point, rel float64) bool {
	return dist2(d.Center, p) <= d.Radius*d.Radius*(1+rel)
}

// inside reports whether d lies entirely within o (boundaries may touch).
func (d Disk) inside(o Disk) bool {
	return Dist(d.Center, o.Center)+d.Radius <= o.Radius
}
