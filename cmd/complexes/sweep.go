package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/katalvlaran/cechrips/simplicial"
	"github.com/katalvlaran/cechrips/skeleton"
	"github.com/sirupsen/logrus"
)

var (
	sweepIn    inputFlags
	sweepSteps int
	sweepRMax  float64
)

func sweepCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runSweep,
		UsageLine: "sweep [options]",
		Short:     "tabulate Čech and Rips counts over a range of radii",
		Long: `
sweep evaluates both complexes at steps+1 evenly spaced radii in [0, rmax]
and prints edge, triangle and component counts. Each radius is an independent
evaluation.

ex:
 $ complexes sweep -n 20 -steps 8 -rmax 0.4
`,
		Flag: *flag.NewFlagSet("sweep", flag.ExitOnError),
	}
	sweepIn.register(&cmd.Flag)
	cmd.Flag.IntVar(&sweepSteps, "steps", 10, "number of radius steps")
	cmd.Flag.Float64Var(&sweepRMax, "rmax", 0.5, "largest radius")
	return cmd
}

func runSweep(cmd *commander.Command, args []string) error {
	in, err := sweepIn.resolve(flagSet(cmd))
	if err != nil {
		return err
	}
	return sweep(os.Stdout, in, sweepSteps, sweepRMax)
}

// sweep writes one row per radius: r, edges, Čech triangles, Rips
// triangles and connected components.
func sweep(w io.Writer, in *input, steps int, rmax float64) error {
	if steps < 1 {
		return fmt.Errorf("-steps=%d: must be at least 1", steps)
	}
	if !(rmax >= 0) {
		return fmt.Errorf("-rmax=%v: must be non-negative", rmax)
	}

	if _, err := fmt.Fprintf(w, "%10s %8s %10s %10s %10s\n", "r", "edges", "cech", "rips", "components"); err != nil {
		return err
	}

	var prev *simplicial.Result
	for i := 0; i <= steps; i++ {
		r := rmax * float64(i) / float64(steps)

		cech, err := simplicial.Build(in.points, r, simplicial.Cech, in.opts...)
		if err != nil {
			return err
		}
		rips, err := simplicial.Build(in.points, r, simplicial.Rips, in.opts...)
		if err != nil {
			return err
		}
		g, err := skeleton.FromResult(rips)
		if err != nil {
			return err
		}

		d := simplicial.Diff(prev, cech)
		log.WithFields(logrus.Fields{
			"radius":          r,
			"added_edges":     len(d.AddedEdges),
			"added_triangles": len(d.AddedTriangles),
		}).Debug("sweep step")
		prev = cech

		if _, err := fmt.Fprintf(w, "%10.4f %8d %10d %10d %10d\n",
			r, rips.EdgeCount(), cech.TriangleCount(), rips.TriangleCount(), len(g.Components())); err != nil {
			return err
		}
	}
	return nil
}
