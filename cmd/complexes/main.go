// Command complexes evaluates Čech and Vietoris–Rips 2-skeleta of planar
// point sets.
//
// Usage:
//
//	complexes build      [-scene file.yaml | -n N -seed S] [-r R] [-kind cech|rips] [-o out.geojson]
//	complexes sweep      [-scene file.yaml | -n N -seed S] [-steps K] [-rmax R]
//	complexes thresholds [-scene file.yaml | -n N -seed S]
//	complexes serve      [-addr :8080] [-max-points N]
package main

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(colorable.NewColorableStderr())
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

func rootCommand() *commander.Command {
	return &commander.Command{
		UsageLine: os.Args[0],
		Short:     "planar Čech and Vietoris–Rips complexes",
		Subcommands: []*commander.Command{
			buildCmd(),
			sweepCmd(),
			thresholdsCmd(),
			serveCmd(),
		},
	}
}

func main() {
	if err := rootCommand().Dispatch(os.Args[1:]); err != nil {
		log.WithError(err).Error("complexes failed")
		os.Exit(1)
	}
}
