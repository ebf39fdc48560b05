package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/prim_kruskal"
)

// buildTriangle constructs 1—2 (1), 2—3 (2), 1—3 (3).
// Its MST is {1—2, 2—3} with total weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(1, 3, 3))

	return g
}

// buildMediumGraph creates a connected graph: a chain 1..n plus random extra
// links, seeded for reproducibility.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph {
	g := core.NewGraph()
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1+r.Float64()*9))
	}
	for g.Size() < edgesCount {
		u := core.NodeID(r.Intn(n) + 1)
		v := core.NodeID(r.Intn(n) + 1)
		if u == v || g.HasEdge(u, v) {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, 1+r.Float64()*99))
	}

	return g
}

func TestKruskal_Triangle(t *testing.T) {
	mst, w, err := prim_kruskal.Kruskal(buildTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 2}}, mst)
}

func TestPrim_Triangle(t *testing.T) {
	mst, w, err := prim_kruskal.Prim(buildTriangle(t), 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 2}}, mst)
}

func TestMST_Errors(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(nil, 1)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	empty := core.NewGraph()
	_, _, err = prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	g := buildTriangle(t)
	g.AddNode(9)
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, 1)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, 42)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestMST_SingleNode(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(5)

	mst, w, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, w)

	mst, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	require.NoError(t, err)
	assert.Empty(t, mst)
}

// TestMST_Agreement checks that both algorithms pick the same edges, also
// when weights repeat and only the endpoint tie-break separates them.
func TestMST_Agreement(t *testing.T) {
	for _, g := range []*core.Graph{buildMediumGraph(t, 60, 240), tiedGrid(t)} {
		k, kw, err := prim_kruskal.Compute(g)
		require.NoError(t, err)
		p, pw, err := prim_kruskal.Compute(g,
			prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
			prim_kruskal.WithRoot(g.Nodes()[len(g.Nodes())-1]))
		require.NoError(t, err)

		assert.InDelta(t, kw, pw, 1e-9)
		assert.Equal(t, k, p)
		assert.Len(t, k, g.Order()-1)
	}
}

// tiedGrid is a 4x4 grid where every edge weighs 1.
func tiedGrid(t testing.TB) *core.Graph {
	g := core.NewGraph()
	id := func(r, c int) core.NodeID { return core.NodeID(r*4 + c + 1) }
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if c+1 < 4 {
				require.NoError(t, g.AddEdge(id(r, c), id(r, c+1), 1))
			}
			if r+1 < 4 {
				require.NoError(t, g.AddEdge(id(r, c), id(r+1, c), 1))
			}
		}
	}

	return g
}
