// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghs/core"
)

func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddEdge(1, 2, 3))
	assert.True(t, g.HasNode(1))
	assert.True(t, g.HasNode(2))
	assert.True(t, g.HasEdge(2, 1), "edges are undirected")
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())

	w, err := g.Weight(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	_, err = g.Weight(1, 3)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_AddEdge_Rejects(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))

	assert.ErrorIs(t, g.AddEdge(3, 3, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(2, 1, 5), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge(1, 3, math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(1, 3, math.Inf(1)), core.ErrBadWeight)

	// Rejected edges leave no trace.
	assert.Equal(t, 1, g.Size())
	assert.False(t, g.HasNode(3))
}

func TestGraph_DeterministicViews(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(5, 1, 4))
	require.NoError(t, g.AddEdge(5, 3, 1))
	require.NoError(t, g.AddEdge(1, 3, 2))
	g.AddNode(9)
	g.AddNode(9)

	assert.Equal(t, []core.NodeID{1, 3, 5, 9}, g.Nodes())

	nbs, err := g.Neighbors(5)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{ID: 1, Weight: 4}, {ID: 3, Weight: 1}}, nbs)

	ids, err := g.NeighborIDs(9)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.Equal(t, []core.Edge{
		{From: 3, To: 5, Weight: 1},
		{From: 1, To: 3, Weight: 2},
		{From: 1, To: 5, Weight: 4},
	}, g.Edges())
}

func TestGraph_DistinctWeightsAndClone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	assert.True(t, g.DistinctWeights())

	c := g.Clone()
	require.NoError(t, c.AddEdge(3, 1, 2))
	assert.False(t, c.DistinctWeights())

	// The original is unaffected by mutations of the clone.
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, 3, c.Size())
}

// TestGraph_ConcurrentReads mirrors the parallel stepping pattern: many
// goroutines read neighbor lists while nothing writes.
func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := core.NodeID(1); i < 50; i++ {
		require.NoError(t, g.AddEdge(i, i+1, float64(i)))
	}

	var wg sync.WaitGroup
	for _, id := range g.Nodes() {
		wg.Add(1)
		go func(id core.NodeID) {
			defer wg.Done()
			nbs, err := g.Neighbors(id)
			assert.NoError(t, err)
			assert.NotEmpty(t, nbs)
		}(id)
	}
	wg.Wait()
}
