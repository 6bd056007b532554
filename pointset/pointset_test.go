package pointset_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cechrips/geom"
	"github.com/katalvlaran/cechrips/pointset"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUniform_Deterministic checks that equal seeds give equal clouds.
func TestUniform_Deterministic(t *testing.T) {
	a, err := pointset.Uniform(7, pointset.WithSeed(42))
	require.NoError(t, err)
	b, err := pointset.Uniform(7, pointset.WithSeed(42))
	require.NoError(t, err)
	c, err := pointset.Uniform(7, pointset.WithSeed(43))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	d, err := pointset.Uniform(7, pointset.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a, d, "WithRand and WithSeed share the source")
}

// TestUniform_Bound keeps every sample inside the requested box.
func TestUniform_Bound(t *testing.T) {
	box := orb.Bound{Min: orb.Point{-2, 3}, Max: orb.Point{-1, 7}}
	pts, err := pointset.Uniform(200, pointset.WithSeed(5), pointset.WithBound(box))
	require.NoError(t, err)
	require.Len(t, pts, 200)

	for _, p := range pts {
		assert.True(t, box.Contains(orb.Point{p.X, p.Y}), "%v outside %v", p, box)
	}
	assert.True(t, box.Contains(pointset.Bound(pts).Min))
	assert.True(t, box.Contains(pointset.Bound(pts).Max))
}

// TestUniform_Errors covers the invalid counts and bounds.
func TestUniform_Errors(t *testing.T) {
	pts, err := pointset.Uniform(0)
	require.NoError(t, err)
	assert.Empty(t, pts)

	_, err = pointset.Uniform(-1)
	assert.ErrorIs(t, err, pointset.ErrTooFewPoints)

	inverted := orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{0, 0}}
	_, err = pointset.Uniform(3, pointset.WithBound(inverted))
	assert.ErrorIs(t, err, pointset.ErrBadBound)

	infinite := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{math.Inf(1), 1}}
	_, err = pointset.Uniform(3, pointset.WithBound(infinite))
	assert.ErrorIs(t, err, pointset.ErrBadBound)

	assert.Panics(t, func() { pointset.WithRand(nil) })
}

// TestRing_Hexagon checks that a unit hexagon has unit sides.
func TestRing_Hexagon(t *testing.T) {
	pts, err := pointset.Ring(6, geom.Pt(1, 1), 1)
	require.NoError(t, err)
	require.Len(t, pts, 6)

	assert.InDelta(t, 2, pts[0].X, 1e-12)
	assert.InDelta(t, 1, pts[0].Y, 1e-12)
	for i := range pts {
		assert.InDelta(t, 1, geom.Dist(pts[i], pts[(i+1)%6]), 1e-12)
		assert.InDelta(t, 1, geom.Dist(pts[i], geom.Pt(1, 1)), 1e-12)
	}

	_, err = pointset.Ring(2, geom.Pt(0, 0), 1)
	assert.ErrorIs(t, err, pointset.ErrTooFewPoints)
	_, err = pointset.Ring(5, geom.Pt(0, 0), 0)
	assert.ErrorIs(t, err, pointset.ErrBadBound)
	_, err = pointset.Ring(5, geom.Pt(math.NaN(), 0), 1)
	assert.ErrorIs(t, err, pointset.ErrBadBound)
}

// TestBound_Empty returns the zero bound for no points.
func TestBound_Empty(t *testing.T) {
	assert.Equal(t, orb.Bound{}, pointset.Bound(nil))
	assert.Equal(t,
		orb.Bound{Min: orb.Point{0, -1}, Max: orb.Point{2, 3}},
		pointset.Bound([]geom.Point{geom.Pt(0, 3), geom.Pt(2, -1), geom.Pt(1, 1)}))
}
