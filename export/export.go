package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/cechrips/geom"
	"github.com/katalvlaran/cechrips/pointset"
	"github.com/katalvlaran/cechrips/simplicial"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var (
	// ErrIndexOutOfRange indicates a Result whose vertex count disagrees
	// with the supplied points.
	ErrIndexOutOfRange = errors.New("export: result does not match points")

	// ErrNilResult indicates a nil *simplicial.Result.
	ErrNilResult = errors.New("export: nil result")
)

// Feature property keys.
const (
	PropIndex  = "index"
	PropI      = "i"
	PropJ      = "j"
	PropK      = "k"
	PropKind   = "kind"
	PropRadius = "radius"
)

func orbPoint(p geom.Point) orb.Point { return orb.Point{p.X, p.Y} }

// FeatureCollection encodes res over points. points must be the slice the
// Result was built from.
func FeatureCollection(points []geom.Point, res *simplicial.Result) (*geojson.FeatureCollection, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if res.VertexCount() != len(points) {
		return nil, fmt.Errorf("%w: result has %d vertices, got %d points",
			ErrIndexOutOfRange, res.VertexCount(), len(points))
	}

	fc := geojson.NewFeatureCollection()
	if len(points) > 0 {
		fc.BBox = geojson.NewBBox(pointset.Bound(points))
	}
	fc.ExtraMembers = geojson.Properties{
		PropKind:   res.Kind().String(),
		PropRadius: res.Radius(),
	}

	for i, p := range points {
		f := geojson.NewFeature(orbPoint(p))
		f.Properties[PropIndex] = i
		fc.Append(f)
	}
	for _, e := range res.Edges() {
		f := geojson.NewFeature(orb.LineString{orbPoint(points[e.I]), orbPoint(points[e.J])})
		f.Properties[PropI] = e.I
		f.Properties[PropJ] = e.J
		fc.Append(f)
	}
	for _, t := range res.Triangles() {
		a, b, c := orbPoint(points[t.I]), orbPoint(points[t.J]), orbPoint(points[t.K])
		f := geojson.NewFeature(orb.Polygon{orb.Ring{a, b, c, a}})
		f.Properties[PropI] = t.I
		f.Properties[PropJ] = t.J
		f.Properties[PropK] = t.K
		fc.Append(f)
	}

	return fc, nil
}

// Write encodes fc to w as indented JSON followed by a newline.
func Write(w io.Writer, fc *geojson.FeatureCollection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}
