package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/cechrips/geom"
	"github.com/katalvlaran/cechrips/simplicial"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenario = []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0.5, 0.8)}

func TestBuild_WritesGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, build(&buf, &input{points: scenario, radius: 0.6, kind: simplicial.Cech}))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3+3+1)
}

func TestBuild_InvalidRadius(t *testing.T) {
	err := build(&bytes.Buffer{}, &input{points: scenario, radius: -1, kind: simplicial.Rips})
	assert.ErrorIs(t, err, simplicial.ErrNegativeRadius)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.geojson")
	in := &input{points: scenario, radius: 0.6, kind: simplicial.Rips}

	require.NoError(t, writeFile(path, func(w io.Writer) error { return build(w, in) }))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = geojson.UnmarshalFeatureCollection(data)
	assert.NoError(t, err)

	err = writeFile(path, func(w io.Writer) error {
		return build(w, &input{points: scenario, radius: -1})
	})
	assert.ErrorIs(t, err, simplicial.ErrNegativeRadius)

	err = writeFile(path, func(w io.Writer) error {
		return w.(*os.File).Close()
	})
	assert.ErrorIs(t, err, os.ErrClosed, "a failing Close is reported")

	assert.Error(t, writeFile(filepath.Join(dir, "missing", "out.geojson"), func(io.Writer) error { return nil }))
}

func TestSweep_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sweep(&buf, &input{points: scenario}, 4, 0.6))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+5)
	assert.Equal(t, []string{"0.0000", "0", "0", "0", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0.6000", "3", "1", "1", "1"}, strings.Fields(lines[5]))

	assert.Error(t, sweep(&buf, &input{points: scenario}, 0, 1))
	assert.Error(t, sweep(&buf, &input{points: scenario}, 3, -1))
}

func TestThresholds_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, thresholds(&buf, scenario))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	f := strings.Fields(lines[1])
	assert.Equal(t, []string{"0", "1", "2", "0.500000"}, f[:4])
	assert.True(t, strings.HasPrefix(f[4], "0.55"), f[4])
}

func TestResolve_FlagsAndScene(t *testing.T) {
	f := inputFlags{n: 5, seed: 2, radius: 0.25, kind: "rips", workers: 2}
	in, err := f.resolve(map[string]bool{})
	require.NoError(t, err)
	assert.Len(t, in.points, 5)
	assert.Equal(t, 0.25, in.radius)
	assert.Equal(t, simplicial.Rips, in.kind)
	assert.Len(t, in.opts, 1)

	path := filepath.Join(t.TempDir(), "s.yaml")
	doc := "kind: cech\nradius: 0.6\npoints: [[0, 0], [1, 0], [0.5, 0.8]]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	f.scene = path
	in, err = f.resolve(map[string]bool{})
	require.NoError(t, err)
	assert.Equal(t, scenario, in.points)
	assert.Equal(t, 0.6, in.radius, "scene wins over defaults")
	assert.Equal(t, simplicial.Cech, in.kind)

	in, err = f.resolve(map[string]bool{"r": true, "kind": true})
	require.NoError(t, err)
	assert.Equal(t, 0.25, in.radius, "explicit flags win over the scene")
	assert.Equal(t, simplicial.Rips, in.kind)

	f.kind = "alpha"
	_, err = f.resolve(map[string]bool{"kind": true})
	assert.ErrorIs(t, err, simplicial.ErrUnknownKind)
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := rootCommand()
	var names []string
	for _, c := range root.Subcommands {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"build", "sweep", "thresholds", "serve"}, names)
}
