package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/katalvlaran/cechrips/export"
	"github.com/katalvlaran/cechrips/simplicial"
	"github.com/katalvlaran/cechrips/skeleton"
	"github.com/sirupsen/logrus"
)

var (
	buildIn  inputFlags
	buildOut string
)

func buildCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runBuild,
		UsageLine: "build [options]",
		Short:     "evaluate one complex and write it as GeoJSON",
		Long: `
build evaluates the Čech or Vietoris–Rips complex of a point set at one radius
and writes vertices, edges and triangles as a GeoJSON FeatureCollection.

ex:
 $ complexes build -n 12 -seed 3 -r 0.2 -kind rips -o out.geojson
 $ complexes build -scene scene.yaml
`,
		Flag: *flag.NewFlagSet("build", flag.ExitOnError),
	}
	buildIn.register(&cmd.Flag)
	cmd.Flag.StringVar(&buildOut, "o", "", "output file; stdout when empty")
	return cmd
}

func runBuild(cmd *commander.Command, args []string) error {
	in, err := buildIn.resolve(flagSet(cmd))
	if err != nil {
		return err
	}

	if buildOut == "" {
		return build(os.Stdout, in)
	}
	return writeFile(buildOut, func(w io.Writer) error { return build(w, in) })
}

// writeFile creates path, hands it to fn and reports the first error of fn
// or Close.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return fn(f)
}

// build evaluates in, logs a summary and writes the GeoJSON encoding to w.
func build(w io.Writer, in *input) error {
	res, err := simplicial.Build(in.points, in.radius, in.kind, in.opts...)
	if err != nil {
		return err
	}

	g, err := skeleton.FromResult(res)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"kind":       res.Kind(),
		"radius":     res.Radius(),
		"vertices":   res.VertexCount(),
		"edges":      res.EdgeCount(),
		"triangles":  res.TriangleCount(),
		"components": len(g.Components()),
		"euler":      res.EulerCharacteristic(),
	}).Info("complex built")

	fc, err := export.FeatureCollection(in.points, res)
	if err != nil {
		return err
	}
	return export.Write(w, fc)
}
