package main

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/katalvlaran/cechrips/geom"
	"github.com/katalvlaran/cechrips/scene"
	"github.com/katalvlaran/cechrips/simplicial"
	"github.com/sirupsen/logrus"
)

// input is what every subcommand evaluates: a point set plus the scene's
// radius, kind and options, after flag overrides.
type input struct {
	points []geom.Point
	radius float64
	kind   simplicial.Kind
	opts   []simplicial.Option
}

// inputFlags are shared by all subcommands.
type inputFlags struct {
	scene   string
	n       int
	seed    int64
	radius  float64
	kind    string
	workers int
	verbose bool
}

func (f *inputFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.scene, "scene", "", "YAML scene file; overrides -n and -seed")
	fs.IntVar(&f.n, "n", 7, "number of random points in the unit square")
	fs.Int64Var(&f.seed, "seed", 1, "seed for the random points")
	fs.Float64Var(&f.radius, "r", 0.35, "disk radius")
	fs.StringVar(&f.kind, "kind", "cech", "complex kind: cech or rips")
	fs.IntVar(&f.workers, "workers", 1, "goroutines per evaluation")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
}

// flagSet reports which flags were given explicitly on cmd's command line.
func flagSet(cmd *commander.Command) map[string]bool {
	set := make(map[string]bool)
	cmd.Flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// resolve turns the flags into an input. Values from a scene file win over
// flag defaults; explicitly given -r, -kind and -workers win over the scene.
func (f *inputFlags) resolve(set map[string]bool) (*input, error) {
	if f.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	sc := &scene.Scene{Radius: f.radius, Random: &scene.Random{N: f.n, Seed: f.seed}}
	if f.scene != "" {
		loaded, err := scene.Load(f.scene)
		if err != nil {
			return nil, err
		}
		sc = loaded
		log.WithField("scene", f.scene).Debug("scene loaded")
	}
	if f.scene == "" || set["r"] {
		sc.Radius = f.radius
	}
	if f.scene == "" || set["kind"] {
		kind, err := simplicial.ParseKind(f.kind)
		if err != nil {
			return nil, err
		}
		sc.Kind = kind
	}
	if f.scene == "" || set["workers"] {
		if f.workers < 1 {
			return nil, fmt.Errorf("-workers=%d: must be at least 1", f.workers)
		}
		sc.Workers = f.workers
	}

	pts, err := sc.PointSet()
	if err != nil {
		return nil, err
	}

	return &input{points: pts, radius: sc.Radius, kind: sc.Kind, opts: sc.BuildOptions()}, nil
}
