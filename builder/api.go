// SPDX-License-Identifier: MIT
// Package: ghs/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ghs/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes via cfg.idFn and edges via cfg.weightFn.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
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

// Build is BuildGraph for a single constructor with variadic options.
func Build(con Constructor, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, con)
}

// ByName resolves a topology name as used on the command line to a
// Constructor. Recognized names: path, cycle, star, wheel, complete, grid,
// sparse, random. For grid, n is the side length; for sparse and random, p is
// the extra-edge probability (ignored elsewhere).
func ByName(name string, n int, p float64) (Constructor, error) {
	switch name {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "complete":
		return Complete(n), nil
	case "grid":
		return Grid(n, n), nil
	case "sparse":
		return RandomSparse(n, p), nil
	case "random":
		return RandomConnected(n, p), nil
	}

	return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownTopology)
}
