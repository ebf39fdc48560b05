package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghs/bfs"
	"github.com/katalvlaran/ghs/core"
)

// cycle4 builds the undirected cycle 1-2-3-4-1.
func cycle4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(3, 4, 3))
	require.NoError(t, g.AddEdge(4, 1, 4))

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), 1)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
}

func TestBFS_CycleDepths(t *testing.T) {
	g := cycle4(t)
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{1, 2, 4, 3}, res.Order)
	assert.Equal(t, map[core.NodeID]int{1: 0, 2: 1, 4: 1, 3: 2}, res.Depth)
	assert.Equal(t, map[core.NodeID]core.NodeID{2: 1, 4: 1, 3: 2}, res.Parent)
	assert.True(t, res.Spans(g))
	assert.Equal(t, 2, res.Height())
}

func TestBFS_WithLinks(t *testing.T) {
	g := cycle4(t)

	// The tree 1-2, 2-3, 3-4 forces a path, whichever way the edges point.
	tree := []core.Edge{{From: 2, To: 1}, {From: 2, To: 3}, {From: 4, To: 3}}
	res, err := bfs.BFS(g, 1, bfs.WithLinks(tree))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, res.Order)
	assert.Equal(t, 3, res.Height())
	assert.True(t, res.Spans(g))

	// A link g lacks does not help.
	res, err = bfs.BFS(g, 1, bfs.WithLinks([]core.Edge{{From: 1, To: 2}, {From: 1, To: 3}}))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2}, res.Order)
	assert.False(t, res.Spans(g))

	res, err = bfs.BFS(g, 3, bfs.WithLinks(nil))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{3}, res.Order)
	assert.Equal(t, 0, res.Height())
}

func TestBFS_OnVisit(t *testing.T) {
	var visits []bfs.Visit
	_, err := bfs.BFS(cycle4(t), 2, bfs.WithOnVisit(func(v bfs.Visit) error {
		visits = append(visits, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []bfs.Visit{
		{ID: 2},
		{ID: 1, Parent: 2, Depth: 1},
		{ID: 3, Parent: 2, Depth: 1},
		{ID: 4, Parent: 1, Depth: 2},
	}, visits)
	assert.True(t, visits[0].IsStart())
	assert.False(t, visits[1].IsStart())

	stop := errors.New("stop")
	res, err := bfs.BFS(cycle4(t), 1, bfs.WithOnVisit(func(v bfs.Visit) error {
		if v.ID == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []core.NodeID{1, 2}, res.Order)
}

func TestBFS_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(cycle4(t), 1, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = bfs.Connected(cycle4(t), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnected(t *testing.T) {
	ok, err := bfs.Connected(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, ok, "empty graph")

	g := cycle4(t)
	ok, err = bfs.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)

	g.AddNode(7)
	ok, err = bfs.Connected(g)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = bfs.Connected(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
