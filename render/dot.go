// Package render writes spanning trees as Graphviz DOT.
//
// The default output is the bare undirected form
//
//	graph {
//	  1 -- 2;
//	  2 -- 3;
//	}
//
// Options add a graph name, weight labels, a highlighted root and the
// non-tree links of the underlying topology.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/ghs/core"
)

// ErrNilWriter is returned when DOT gets no destination.
var ErrNilWriter = errors.New("render: nil writer")

// Options controls DOT output.
type Options struct {
	Name    string
	Weights bool
	Root    core.NodeID
	HasRoot bool
	Graph   *core.Graph // non-tree edges drawn dotted when set
}

// Option mutates Options.
type Option func(*Options)

// WithName sets the graph identifier.
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

// WithWeights labels every edge with its weight.
func WithWeights() Option { return func(o *Options) { o.Weights = true } }

// WithRoot draws id as a double circle.
func WithRoot(id core.NodeID) Option {
	return func(o *Options) { o.Root, o.HasRoot = id, true }
}

// WithGraph adds the links of g that are not in the tree, dotted.
func WithGraph(g *core.Graph) Option { return func(o *Options) { o.Graph = g } }

// DOT writes tree to w. Edges are printed normalized and sorted by EdgeOrder.
func DOT(w io.Writer, tree []core.Edge, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	edges := make([]core.Edge, len(tree))
	inTree := make(map[[2]core.NodeID]struct{}, len(tree))
	for i, e := range tree {
		edges[i] = e.Normalized()
		lo, hi := e.Ends()
		inTree[[2]core.NodeID{lo, hi}] = struct{}{}
	}
	sort.Slice(edges, func(i, j int) bool { return core.Less(edges[i], edges[j]) })

	bw := bufio.NewWriter(w)
	if o.Name != "" {
		fmt.Fprintf(bw, "graph %s {\n", strconv.Quote(o.Name))
	} else {
		bw.WriteString("graph {\n")
	}
	if o.HasRoot {
		fmt.Fprintf(bw, "  %d [shape=doublecircle];\n", o.Root)
	}
	for _, e := range edges {
		writeEdge(bw, e, o.Weights, "")
	}
	if o.Graph != nil {
		for _, e := range o.Graph.Edges() {
			if _, ok := inTree[[2]core.NodeID{e.From, e.To}]; !ok {
				writeEdge(bw, e, o.Weights, "style=dotted")
			}
		}
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

func writeEdge(w *bufio.Writer, e core.Edge, weights bool, style string) {
	var attrs string
	switch {
	case weights && style != "":
		attrs = fmt.Sprintf(" [label=%q, %s]", strconv.FormatFloat(e.Weight, 'g', -1, 64), style)
	case weights:
		attrs = fmt.Sprintf(" [label=%q]", strconv.FormatFloat(e.Weight, 'g', -1, 64))
	case style != "":
		attrs = " [" + style + "]"
	}
	fmt.Fprintf(w, "  %d -- %d%s;\n", e.From, e.To, attrs)
}
