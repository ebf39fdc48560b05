// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghs/core"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, core.NodeID(8), cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	assert.False(t, cfg.distinct)
	assert.Nil(t, cfg.used)
}

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	cfg := newBuilderConfig(WithOffsetIDs(100))
	assert.Equal(t, core.NodeID(103), cfg.idFn(3))

	cfg = newBuilderConfig(WithOffsetIDs(100), WithDefaultIDs())
	assert.Equal(t, core.NodeID(4), cfg.idFn(3), "last option wins")

	cfg = newBuilderConfig(WithIDScheme(StrideIDFn(10, 5)))
	assert.Equal(t, core.NodeID(25), cfg.idFn(3))
}

func TestRandOptions(t *testing.T) {
	a := newBuilderConfig(WithSeed(9))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(9))))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
}

func TestNextWeight_Distinct(t *testing.T) {
	cfg := newBuilderConfig(WithConstantWeight(2), WithDistinctWeights())
	seen := map[float64]bool{}
	for i := 0; i < 50; i++ {
		w := cfg.nextWeight()
		assert.False(t, seen[w], "weight %v repeated", w)
		assert.GreaterOrEqual(t, w, 2.0)
		seen[w] = true
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithWeightFn(nil) })
}
