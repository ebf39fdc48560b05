// SPDX-License-Identifier: MIT
// Package: ghs/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn     = DefaultIDFn   (1,2,3,...)
//   • rng      = nil           (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn
//   • distinct = false

package builder

import (
	"math"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers), except for
// the used-weights set which is shared so that distinctness spans every
// constructor of one BuildGraph call.
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// distinct forces every emitted weight to be unique.
	distinct bool
	// used records weights already emitted (only when distinct).
	used map[float64]struct{}
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.distinct {
		cfg.used = make(map[float64]struct{})
	}

	return cfg
}

// nextWeight draws a weight from weightFn and, when distinctness is on,
// nudges it to the next representable float above any weight already used.
func (c builderConfig) nextWeight() float64 {
	w := c.weightFn(c.rng)
	if !c.distinct {
		return w
	}
	for {
		if _, dup := c.used[w]; !dup {
			break
		}
		w = math.Nextafter(w, math.Inf(1))
	}
	c.used[w] = struct{}{}

	return w
}
