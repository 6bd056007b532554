// Package pointset produces point clouds for the complex builders: seeded
// uniform samples inside a bounding box and regular polygons.
//
// Point generation belongs to the application around the builders, not to
// the builders themselves; this package is the fixture source for the CLI,
// examples and benchmarks.
//
// Determinism: the same seed and options yield the same points. Without
// WithSeed or WithRand, Uniform uses seed 1.
package pointset
