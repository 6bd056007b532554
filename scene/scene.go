// Package scene loads evaluation requests from YAML:
//
//	kind: rips          # cech | rips
//	radius: 0.35
//	workers: 4          # optional, 0 means sequential
//	points:             # explicit coordinates ...
//	  - [0, 0]
//	  - [1, 0]
//	  - [0.5, 0.8]
//	random:             # ... or a seeded uniform cloud in the unit square
//	  n: 7
//	  seed: 42
//
// Explicit points win over random when both are given.
package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/cechrips/geom"
	"github.com/katalvlaran/cechrips/pointset"
	"github.com/katalvlaran/cechrips/simplicial"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoPoints indicates a scene with neither points nor a random cloud.
	ErrNoPoints = errors.New("scene: no points and no random cloud")

	// ErrBadPoint indicates a coordinate entry that is not a finite pair.
	ErrBadPoint = errors.New("scene: point must be a pair of finite numbers")

	// ErrBadRadius indicates a negative or non-finite radius.
	ErrBadRadius = errors.New("scene: radius must be finite and non-negative")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("scene: workers must be non-negative")

	// ErrTooManyPoints indicates a random cloud larger than MaxRandomPoints.
	ErrTooManyPoints = errors.New("scene: random cloud too large")
)

// MaxRandomPoints bounds random.n. The triple scan is cubic, so far smaller
// clouds are already impractical.
const MaxRandomPoints = 1 << 20

// Scene is one evaluation request. The JSON tags let HTTP clients post the
// same document.
type Scene struct {
	Kind    simplicial.Kind `yaml:"kind" json:"kind"`
	Radius  float64      `yaml:"radius" json:"radius"`
	Workers int          `yaml:"workers,omitempty" json:"workers,omitempty"`
	Points  [][]float64  `yaml:"points,omitempty" json:"points,omitempty"`
	Random  *Random      `yaml:"random,omitempty" json:"random,omitempty"`
}

// Random describes a seeded uniform cloud in the unit square.
type Random struct {
	N    int   `yaml:"n" json:"n"`
	Seed int64 `yaml:"seed" json:"seed"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads one YAML document from r and validates it. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scene without generating any points.
func (s *Scene) Validate() error {
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius < 0 {
		return fmt.Errorf("radius=%v: %w", s.Radius, ErrBadRadius)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", s.Workers, ErrBadWorkers)
	}
	for i, p := range s.Points {
		if len(p) != 2 || !geom.Pt(p[0], p[1]).IsFinite() {
			return fmt.Errorf("points[%d]=%v: %w", i, p, ErrBadPoint)
		}
	}
	if len(s.Points) == 0 && (s.Random == nil || s.Random.N <= 0) {
		return ErrNoPoints
	}
	if len(s.Points) == 0 && s.Random.N > MaxRandomPoints {
		return fmt.Errorf("random.n=%d: %w", s.Random.N, ErrTooManyPoints)
	}
	return nil
}

// Size returns the number of points PointSet would produce, without
// generating them.
func (s *Scene) Size() int {
	if len(s.Points) > 0 {
		return len(s.Points)
	}
	if s.Random != nil && s.Random.N > 0 {
		return s.Random.N
	}
	return 0
}

// PointSet returns the scene's points: the explicit list when present,
// otherwise the seeded random cloud.
func (s *Scene) PointSet() ([]geom.Point, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(s.Points) > 0 {
		pts := make([]geom.Point, len(s.Points))
		for i, p := range s.Points {
			pts[i] = geom.Pt(p[0], p[1])
		}
		return pts, nil
	}
	return pointset.Uniform(s.Random.N, pointset.WithSeed(s.Random.Seed))
}

// BuildOptions translates the scene's tuning knobs into complex options.
func (s *Scene) BuildOptions() []simplicial.Option {
	if s.Workers > 1 {
		return []simplicial.Option{simplicial.WithWorkers(s.Workers)}
	}
	return nil
}

// Marshal renders s back to YAML.
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
