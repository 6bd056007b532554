package pointset

import (
	"math/rand"

	"github.com/paulmach/orb"
)

// Option customizes Uniform.
type Option func(*config)

// config aggregates the knobs of Uniform.
type config struct {
	rng   *rand.Rand
	bound orb.Bound
}

const defaultSeed = 1

// UnitSquare is the default sampling region [0,1]².
var UnitSquare = orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{bound: UnitSquare}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithSeed samples from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand samples from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithBound samples inside b instead of the unit square. Validity is checked
// by Uniform so that a bad bound surfaces as ErrBadBound.
func WithBound(b orb.Bound) Option {
	return func(c *config) {
		c.bound = b
	}
}
