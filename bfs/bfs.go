package bfs

import (
	"fmt"

	"github.com/katalvlaran/ghs/core"
)

// walker holds the mutable state of one walk.
type walker struct {
	graph *core.Graph
	opts  options
	queue []Visit
	res   *Result
}

// BFS walks g breadth-first from start. Neighbors are taken in ascending id
// order, so the visit sequence is reproducible.
//
// Errors: ErrGraphNil, ErrStartNotFound, ErrNeighbors, the context's error,
// or the error returned by the visit hook.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]Visit, 0, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.push(Visit{ID: start})

	return w.res, w.loop()
}

// Connected reports whether every node of g is reachable from the smallest
// node. An empty graph is considered connected.
func Connected(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return true, nil
	}
	res, err := BFS(g, nodes[0], opts...)
	if err != nil {
		return false, err
	}

	return res.Spans(g), nil
}

// push marks v reached and queues it.
func (w *walker) push(v Visit) {
	w.res.Depth[v.ID] = v.Depth
	if !v.IsStart() {
		w.res.Parent[v.ID] = v.Parent
	}
	w.queue = append(w.queue, v)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.ctx.Err(); err != nil {
			return err
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v.ID)
		if err := w.opts.onVisit(v); err != nil {
			return fmt.Errorf("bfs: visit %d: %w", v.ID, err)
		}

		nbrs, err := w.graph.NeighborIDs(v.ID)
		if err != nil {
			return fmt.Errorf("%w: %d: %v", ErrNeighbors, v.ID, err)
		}
		for _, nb := range nbrs {
			if _, seen := w.res.Depth[nb]; seen || !w.opts.follow(v.ID, nb) {
				continue
			}
			w.push(Visit{ID: nb, Parent: v.ID, Depth: v.Depth + 1})
		}
	}

	return nil
}
