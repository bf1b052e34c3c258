// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/fivecolor/geometry"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithCenter moves every layout so that it is centered on c.
func WithCenter(c geometry.Coordinate) BuilderOption {
	return func(cfg *builderConfig) { cfg.center = c }
}

// WithRadius sets the ring radius. Panics unless r is finite and positive.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("builder: WithRadius requires a finite r > 0")
	}

	return func(cfg *builderConfig) { cfg.radius = r }
}

// WithSpacing sets the path and grid step. Panics unless s is finite and positive.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSpacing requires a finite s > 0")
	}

	return func(cfg *builderConfig) { cfg.spacing = s }
}

// WithRand provides an explicit RNG for stochastic constructors.
// A nil r leaves the configuration unchanged.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed creates a new seeded RNG, for reproducible stochastic fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}
