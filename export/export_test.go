package export_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/cechrips/export"
	"github.com/katalvlaran/cechrips/geom"
	"github.com/katalvlaran/cechrips/simplicial"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenario = []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0.5, 0.8)}

// TestFeatureCollection_Layout checks feature order, geometry types and
// properties for the three-point scenario.
func TestFeatureCollection_Layout(t *testing.T) {
	res, err := simplicial.Build(scenario, 0.6, simplicial.Cech)
	require.NoError(t, err)

	fc, err := export.FeatureCollection(scenario, res)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3+3+1)

	for i := 0; i < 3; i++ {
		f := fc.Features[i]
		assert.Equal(t, orb.Point{scenario[i].X, scenario[i].Y}, f.Geometry)
		assert.Equal(t, i, f.Properties[export.PropIndex])
	}

	edge := fc.Features[3]
	assert.Equal(t, orb.LineString{{0, 0}, {1, 0}}, edge.Geometry)
	assert.Equal(t, 0, edge.Properties[export.PropI])
	assert.Equal(t, 1, edge.Properties[export.PropJ])

	tri := fc.Features[6]
	poly, ok := tri.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)
	assert.True(t, poly[0].Closed())
	assert.Equal(t, 2, tri.Properties[export.PropK])

	assert.Equal(t, geojson.BBox{0, 0, 1, 0.8}, fc.BBox)
	assert.Equal(t, "cech", fc.ExtraMembers[export.PropKind])
	assert.Equal(t, 0.6, fc.ExtraMembers[export.PropRadius])
}

// TestWrite_RoundTrip encodes and decodes a Rips collection.
func TestWrite_RoundTrip(t *testing.T) {
	res, err := simplicial.Build(scenario, 0.48, simplicial.Rips)
	require.NoError(t, err)
	fc, err := export.FeatureCollection(scenario, res)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, fc))

	back, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, back.Features, 3+res.EdgeCount()+res.TriangleCount())
	assert.Equal(t, 2, back.Features[2].Properties.MustInt(export.PropIndex))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "FeatureCollection", raw["type"])
	assert.Equal(t, "rips", raw[export.PropKind])
	assert.Equal(t, 0.48, raw[export.PropRadius])
}

// TestFeatureCollection_Errors covers nil and mismatched input.
func TestFeatureCollection_Errors(t *testing.T) {
	_, err := export.FeatureCollection(scenario, nil)
	assert.ErrorIs(t, err, export.ErrNilResult)

	res, err := simplicial.Build(scenario, 0.6, simplicial.Rips)
	require.NoError(t, err)
	_, err = export.FeatureCollection(scenario[:2], res)
	assert.ErrorIs(t, err, export.ErrIndexOutOfRange)
}

// TestFeatureCollection_Empty exports an empty point set without a bbox.
func TestFeatureCollection_Empty(t *testing.T) {
	res, err := simplicial.Build(nil, 1, simplicial.Cech)
	require.NoError(t, err)

	fc, err := export.FeatureCollection(nil, res)
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
	assert.Nil(t, fc.BBox)
}
