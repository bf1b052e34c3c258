package builder

import (
	"math/rand"

	"github.com/katalvlaran/fivecolor/geometry"
)

// builderConfig holds the resolved layout parameters shared by constructors.
type builderConfig struct {
	center  geometry.Coordinate // ring and grid origin
	radius  float64             // ring radius, > 0
	spacing float64             // path and grid step, > 0
	rng     *rand.Rand          // nil unless WithRand/WithSeed
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		radius:  DefaultRadius,
		spacing: DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
