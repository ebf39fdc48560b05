// SPDX-License-Identifier: MIT
// Package: ghs/builder
//
// impl_star.go — Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; hub idFn(0), leaves idFn(1..n-1), spokes in leaf order.
//   • Wheel: n ≥ 4; rim cycle over idFn(0..n-2) then hub idFn(n-1) with
//     spokes in rim order.

package builder

import (
	"github.com/katalvlaran/ghs/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // outer cycle has size (n-1) which must be ≥ 3
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		ids := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return err
		}
		hub := cfg.idFn(n - 1)
		g.AddNode(hub)
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
