// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// determinism and error sentinels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghs/bfs"
	"github.com/katalvlaran/ghs/builder"
	"github.com/katalvlaran/ghs/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		check        func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				for i := core.NodeID(1); i < 4; i++ {
					assert.True(t, g.HasEdge(i, i+1))
				}
			},
		},
		{name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(5, 1), "closing edge")
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			check: func(t *testing.T, g *core.Graph) {
				nbs, err := g.NeighborIDs(1)
				require.NoError(t, err)
				assert.Equal(t, []core.NodeID{2, 3, 4, 5}, nbs)
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			check: func(t *testing.T, g *core.Graph) {
				nbs, err := g.NeighborIDs(5)
				require.NoError(t, err)
				assert.Equal(t, []core.NodeID{1, 2, 3, 4}, nbs)
			},
		},
		{name: "Complete(6)", ctor: builder.Complete(6), wantV: 6, wantE: 15},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 17,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(1, 2), "right neighbor")
				assert.True(t, g.HasEdge(1, 5), "bottom neighbor")
				assert.False(t, g.HasEdge(4, 5), "no wrap-around")
			},
		},
		{
			name: "FromEdges", wantV: 4, wantE: 2,
			ctor: builder.FromEdges([]core.Edge{{From: 1, To: 2, Weight: 7}, {From: 2, To: 3, Weight: 8}}, 9),
			check: func(t *testing.T, g *core.Graph) {
				w, err := g.Weight(2, 1)
				require.NoError(t, err)
				assert.Equal(t, 7.0, w, "explicit weights are kept")
				assert.True(t, g.HasNode(9))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Grid(3,0)", builder.Grid(3, 0), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"RandomConnected(no rng)", builder.RandomConnected(4, 0), builder.ErrNeedRandSource},
		{"RandomConnected(p<0)", builder.RandomConnected(4, -0.1), builder.ErrInvalidProbability},
		{"FromEdges(loop)", builder.FromEdges([]core.Edge{{From: 1, To: 1}}), builder.ErrConstructFailed},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.Build(tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	_, err := builder.Build(builder.FromEdges([]core.Edge{{From: 1, To: 2, Weight: 1}, {From: 2, To: 1, Weight: 2}}))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestRandomConnected_IsConnectedAndDeterministic(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 10)}
		g1, err := builder.BuildGraph(opts, builder.RandomConnected(30, 0.1))
		require.NoError(t, err)
		ok, err := bfs.Connected(g1)
		require.NoError(t, err)
		assert.True(t, ok, "seed %d", seed)
		assert.GreaterOrEqual(t, g1.Size(), 29)

		g2, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 10)},
			builder.RandomConnected(30, 0.1))
		require.NoError(t, err)
		assert.Equal(t, g1.Edges(), g2.Edges())
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Size())

	g, err = builder.Build(builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, g.Size(), "p=1 yields K_5 without an rng")
}

func TestDistinctWeights(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(builder.Complete(8), builder.WithDistinctWeights())
	require.NoError(t, err)
	assert.True(t, g.DistinctWeights())

	g, err = builder.Build(builder.Complete(8))
	require.NoError(t, err)
	assert.False(t, g.DistinctWeights())
}

func TestByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"path", "cycle", "star", "wheel", "complete", "grid"} {
		ctor, err := builder.ByName(name, 4, 0)
		require.NoError(t, err, name)
		g, err := builder.Build(ctor)
		require.NoError(t, err, name)
		assert.NotZero(t, g.Size(), name)
	}
	ctor, err := builder.ByName("random", 10, 0.2)
	require.NoError(t, err)
	_, err = builder.Build(ctor, builder.WithSeed(3))
	require.NoError(t, err)

	_, err = builder.ByName("hexagram", 4, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)
}
