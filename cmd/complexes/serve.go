package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/google/uuid"
	"github.com/katalvlaran/cechrips/export"
	"github.com/katalvlaran/cechrips/scene"
	"github.com/katalvlaran/cechrips/simplicial"
	"github.com/katalvlaran/cechrips/skeleton"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

var (
	serveAddr      string
	serveMaxPoints int
	serveWorkers   int
)

func serveCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runServe,
		UsageLine: "serve [options]",
		Short:     "serve evaluations over HTTP as GeoJSON",
		Long: `
serve answers POST /complex with the GeoJSON encoding of the posted scene,
the same document as a YAML scene file in JSON form:

 {"kind": "rips", "radius": 0.3, "points": [[0, 0], [1, 0], [0.5, 0.8]]}

GET /healthz reports liveness.

ex:
 $ complexes serve -addr :8080 -max-points 500
`,
		Flag: *flag.NewFlagSet("serve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&serveAddr, "addr", ":8080", "listen address")
	cmd.Flag.IntVar(&serveMaxPoints, "max-points", 1000, "largest accepted point set")
	cmd.Flag.IntVar(&serveWorkers, "workers", 1, "goroutines per evaluation")
	return cmd
}

func runServe(cmd *commander.Command, args []string) error {
	if serveMaxPoints < 1 || serveWorkers < 1 {
		return fmt.Errorf("-max-points and -workers must be at least 1")
	}
	gin.SetMode(gin.ReleaseMode)
	log.WithField("addr", serveAddr).Info("serving")
	return newRouter(serveMaxPoints, serveWorkers).Run(serveAddr)
}

// newRouter wires the HTTP handlers. maxPoints bounds the cubic triple scan
// per request.
func newRouter(maxPoints, workers int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/complex", complexHandler(maxPoints, workers))
	return r
}

// requestLogger tags every request with an ID and logs it on completion.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		log.WithFields(logrus.Fields{
			"request": id,
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("http")
	}
}

func complexHandler(maxPoints, workers int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sc scene.Scene
		if err := c.ShouldBindJSON(&sc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if n := sc.Size(); n > maxPoints {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("%d points, at most %d accepted", n, maxPoints),
			})
			return
		}
		pts, err := sc.PointSet()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		opts := []simplicial.Option{simplicial.WithContext(c.Request.Context())}
		if workers > 1 {
			opts = append(opts, simplicial.WithWorkers(workers))
		}
		res, err := simplicial.Build(pts, sc.Radius, sc.Kind, opts...)
		switch {
		case errors.Is(err, simplicial.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}

		fc, err := export.FeatureCollection(pts, res)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if g, err := skeleton.FromResult(res); err == nil {
			fc.ExtraMembers["components"] = len(g.Components())
		}
		c.JSON(http.StatusOK, fc)
	}
}
