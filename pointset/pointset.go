package pointset

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cechrips/geom"
	"github.com/paulmach/orb"
)

var (
	// ErrTooFewPoints indicates a negative count, or fewer than 3 for Ring.
	ErrTooFewPoints = errors.New("pointset: too few points")

	// ErrBadBound indicates an empty, inverted or non-finite sampling bound,
	// or a non-positive ring radius.
	ErrBadBound = errors.New("pointset: invalid bound")
)

// Uniform draws n points uniformly from the configured bound.
// Complexity: O(n).
func Uniform(n int, opts ...Option) ([]geom.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("Uniform: n=%d: %w", n, ErrTooFewPoints)
	}
	cfg := newConfig(opts...)
	b := cfg.bound
	if !finite(b.Min) || !finite(b.Max) || b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() {
		return nil, fmt.Errorf("Uniform: bound %v: %w", b, ErrBadBound)
	}

	w, h := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(b.Min.X()+cfg.rng.Float64()*w, b.Min.Y()+cfg.rng.Float64()*h)
	}
	return pts, nil
}

// Ring places n points on the circle of the given radius around center, at
// equal angles starting from the positive x-axis.
// Complexity: O(n).
func Ring(n int, center geom.Point, radius float64) ([]geom.Point, error) {
	if n < 3 {
		return nil, fmt.Errorf("Ring: n=%d < 3: %w", n, ErrTooFewPoints)
	}
	if !(radius > 0) || math.IsInf(radius, 0) || !center.IsFinite() {
		return nil, fmt.Errorf("Ring: center=%v radius=%v: %w", center, radius, ErrBadBound)
	}

	pts := make([]geom.Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		s, c := math.Sincos(float64(i) * step)
		pts[i] = geom.Pt(center.X+radius*c, center.Y+radius*s)
	}
	return pts, nil
}

// Bound returns the axis-aligned bounding box of pts. An empty slice yields
// the zero bound.
func Bound(pts []geom.Point) orb.Bound {
	if len(pts) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, len(pts))
	for i, p := range pts {
		mp[i] = orb.Point{p.X, p.Y}
	}
	return mp.Bound()
}

// finite reports whether both coordinates of p are finite.
func finite(p orb.Point) bool {
	return geom.Pt(p.X(), p.Y()).IsFinite()
}
