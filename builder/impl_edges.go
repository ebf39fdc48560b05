// SPDX-License-Identifier: MIT
// Package: ghs/builder
//
// impl_edges.go — FromEdges constructor: an explicit edge list, as read from
// a topology file.
//
// Contract:
//   • Each edge is added with its own weight; cfg.weightFn and cfg.idFn are
//     not consulted.
//   • Nodes listed in extra are added even if isolated.
//   • Loops, duplicates and bad weights surface as core sentinels wrapped
//     with ErrConstructFailed context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ghs/core"
)

const methodFromEdges = "FromEdges"

// FromEdges returns a Constructor that adds the given nodes and edges verbatim.
func FromEdges(edges []core.Edge, extra ...core.NodeID) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range extra {
			g.AddNode(id)
		}
		for i, e := range edges {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: edge #%d %v: %w: %w", methodFromEdges, i, e, ErrConstructFailed, err)
			}
		}

		return nil
	}
}
