// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.PlanarGraph, cfg builderConfig) error

// BuildGraph creates an empty core.PlanarGraph, resolves the builder
// configuration from bopts and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) plus the cost of every constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.PlanarGraph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
