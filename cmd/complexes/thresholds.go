package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/katalvlaran/cechrips/geom"
	"github.com/katalvlaran/cechrips/skeleton"
	"github.com/sirupsen/logrus"
)

var thresholdsIn inputFlags

func thresholdsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runThresholds,
		UsageLine: "thresholds [options]",
		Short:     "print the radius at which each triple becomes a triangle",
		Long: `
thresholds prints, for every triple i<j<k, the Rips threshold (the largest
half pairwise distance; the triangle appears for r strictly above it) and the
Čech threshold (the minimum enclosing circle radius).

ex:
 $ complexes thresholds -n 5 -seed 9
`,
		Flag: *flag.NewFlagSet("thresholds", flag.ExitOnError),
	}
	thresholdsIn.register(&cmd.Flag)
	return cmd
}

func runThresholds(cmd *commander.Command, args []string) error {
	in, err := thresholdsIn.resolve(flagSet(cmd))
	if err != nil {
		return err
	}
	tree, connect := skeleton.SpanningTree(in.points)
	log.WithFields(logrus.Fields{
		"points":       len(in.points),
		"tree_edges":   len(tree),
		"connected_at": connect,
	}).Info("1-skeleton is connected for r above connected_at")

	return thresholds(os.Stdout, in.points)
}

// thresholds writes one row per triple in lexicographic order.
func thresholds(w io.Writer, pts []geom.Point) error {
	if _, err := fmt.Fprintf(w, "%5s %5s %5s %12s %12s\n", "i", "j", "k", "rips", "cech"); err != nil {
		return err
	}
	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				rips := math.Max(geom.PairThreshold(pts[i], pts[j]),
					math.Max(geom.PairThreshold(pts[j], pts[k]), geom.PairThreshold(pts[i], pts[k])))
				cech := geom.EnclosingRadius(pts[i], pts[j], pts[k])
				if _, err := fmt.Fprintf(w, "%5d %5d %5d %12.6f %12.6f\n", i, j, k, rips, cech); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
