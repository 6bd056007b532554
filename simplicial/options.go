// SPDX-License-Identifier: MIT
// Package: cechrips/simplicial
//
// options.go — functional options and the resolved build configuration.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Build itself never panics.
//   • Defaults are deterministic: one worker, background context.
//   • Later options override earlier ones.

package simplicial

import (
	"context"
	"fmt"
)

// Option customizes a single Build call.
type Option func(*buildConfig)

// buildConfig is the resolved set of knobs for one evaluation.
type buildConfig struct {
	ctx     context.Context
	workers int
}

const defaultWorkers = 1

// newBuildConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		ctx:     context.Background(),
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers spreads the pair and triple scans over n goroutines. Rows of
// the outer index are dealt round-robin, and the per-row results are merged
// in row order, so the Result is identical for every n.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("simplicial: WithWorkers(%d)", n))
	}
	return func(c *buildConfig) {
		c.workers = n
	}
}

// WithContext lets a caller abandon a long evaluation. The context is polled
// once per outer row; a cancelled Build returns ctx.Err() and no Result.
// Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("simplicial: WithContext(nil)")
	}
	return func(c *buildConfig) {
		c.ctx = ctx
	}
}
