package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ghs/bfs"
	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/node"
	"github.com/katalvlaran/ghs/prim_kruskal"
)

// weightEps is the relative tolerance for comparing total weights, which
// are summed in different orders.
const weightEps = 1e-9

// Verify checks that res is the minimum spanning tree of g: the same edges
// as Kruskal under EdgeOrder, the same total weight, and a tree that spans g
// from res.Root. When res carries node states, every father must be the
// node's parent on the tree walk from the root.
func Verify(g *core.Graph, res *Result) error {
	if g == nil {
		return ErrGraphNil
	}
	if res == nil {
		return fmt.Errorf("sim: nil result: %w", ErrMismatch)
	}

	want, weight, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	if err != nil {
		return fmt.Errorf("sim: reference: %w", err)
	}
	if len(res.Tree) != len(want) {
		return fmt.Errorf("sim: %d edges, reference has %d: %w", len(res.Tree), len(want), ErrMismatch)
	}
	for i := range want {
		if !core.Identical(want[i], res.Tree[i]) {
			return fmt.Errorf("sim: edge #%d is %v, reference %v: %w", i, res.Tree[i], want[i], ErrMismatch)
		}
	}
	if math.Abs(weight-res.TotalWeight) > weightEps*math.Max(1, math.Abs(weight)) {
		return fmt.Errorf("sim: weight %g, reference %g: %w", res.TotalWeight, weight, ErrMismatch)
	}

	fathers := make(map[core.NodeID]node.Father, len(res.Nodes))
	for _, st := range res.Nodes {
		fathers[st.ID] = st.Father
	}
	walk, err := bfs.BFS(g, res.Root, bfs.WithLinks(res.Tree), bfs.WithOnVisit(func(v bfs.Visit) error {
		f, ok := fathers[v.ID]
		switch {
		case !ok:
			return nil
		case v.IsStart() && !f.IsRoot():
			return fmt.Errorf("root %d has father %s: %w", v.ID, f, ErrMismatch)
		case !v.IsStart() && !f.Is(v.Parent):
			return fmt.Errorf("node %d has father %s, tree parent %d: %w", v.ID, f, v.Parent, ErrMismatch)
		}
		return nil
	}))
	switch {
	case errors.Is(err, ErrMismatch):
		return fmt.Errorf("sim: %w", err)
	case err != nil:
		return fmt.Errorf("sim: tree walk: %w: %w", ErrMismatch, err)
	case !walk.Spans(g):
		return fmt.Errorf("sim: tree reaches %d of %d nodes: %w", len(walk.Order), g.Order(), ErrMismatch)
	}

	return nil
}
