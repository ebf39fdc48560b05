// SPDX-License-Identifier: MIT
// Package: ghs/builder
//
// impl_path.go — Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 1; edges i—i+1 for i in [0..n-2].
//   • Cycle: n ≥ 3; Path edges plus the closing edge n-1—0.
//   • Stable emission order: i ascending, closing edge last.

package builder

import (
	"github.com/katalvlaran/ghs/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
// A single-node path is valid and has no edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
