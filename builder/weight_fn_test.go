// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ghs/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestWeightFnValues(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(rng))

	seq := builder.SequentialWeightFn(1)
	assert.Equal(t, []float64{1, 2, 3}, []float64{seq(nil), seq(nil), seq(nil)})

	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(2, 5)(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 5.0)
		assert.GreaterOrEqual(t, builder.NormalWeightFn(1, 3)(rng), 0.0)
		assert.GreaterOrEqual(t, builder.From1To100WeightFn(rng), 1.0)
	}
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rng))

	// nil rng falls back to the default weight.
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 5)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.NormalWeightFn(9, 1)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.ExponentialWeightFn(2)(nil))
}
