package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/ghs/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrNeighbors is returned when the graph cannot list a node's links.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Visit is one dequeued node. Parent is meaningful only below the start,
// whose Depth is 0.
type Visit struct {
	ID     core.NodeID
	Parent core.NodeID
	Depth  int
}

// IsStart reports whether v is the node the walk began at.
func (v Visit) IsStart() bool { return v.Depth == 0 }

// Option configures a walk.
type Option func(*options)

type options struct {
	ctx     context.Context
	onVisit func(Visit) error
	follow  func(from, to core.NodeID) bool
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		onVisit: func(Visit) error { return nil },
		follow:  func(_, _ core.NodeID) bool { return true },
	}
}

// WithContext aborts the walk once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit calls fn for every node in visit order. An error from fn stops
// the walk and is returned wrapped.
func WithOnVisit(fn func(Visit) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithLinks restricts the walk to the links of edges, in either direction.
// Links in edges that g does not have are never followed.
func WithLinks(edges []core.Edge) Option {
	type link struct{ lo, hi core.NodeID }
	set := make(map[link]struct{}, len(edges))
	for _, e := range edges {
		lo, hi := e.Ends()
		set[link{lo, hi}] = struct{}{}
	}

	return func(o *options) {
		o.follow = func(from, to core.NodeID) bool {
			lo, hi := core.Edge{From: from, To: to}.Ends()
			_, ok := set[link{lo, hi}]
			return ok
		}
	}
}

// Result holds the outcome of a walk.
type Result struct {
	// Order lists the reached nodes in visit sequence.
	Order []core.NodeID
	// Depth is the hop distance from the start.
	Depth map[core.NodeID]int
	// Parent is the predecessor in the walk; the start has none.
	Parent map[core.NodeID]core.NodeID
}

// Spans reports whether the walk reached every node of g.
func (r *Result) Spans(g *core.Graph) bool {
	return g != nil && len(r.Order) == g.Order()
}

// Height is the largest depth reached.
func (r *Result) Height() int {
	h := 0
	for _, d := range r.Depth {
		if d > h {
			h = d
		}
	}

	return h
}
