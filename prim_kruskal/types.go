// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/ghs/core"
)

// ErrInvalidGraph indicates a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrRootNotFound indicates that Prim's start node is not part of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root node not found")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed. It applies when |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting node to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	// When zero, Prim starts from the smallest node id.
	Root core.NodeID
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm.
func WithRoot(root core.NodeID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on the options.
//
// Returns the MST edges (normalized, sorted by EdgeOrder), their total
// weight and an error if the computation cannot proceed. An unknown
// method yields ErrInvalidGraph.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		root := o.Root
		if root == 0 && graph != nil && graph.Order() > 0 && !graph.HasNode(0) {
			root = graph.Nodes()[0]
		}
		return Prim(graph, root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
