// SPDX-License-Identifier: MIT
// Package: ghs/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and RandomConnected(n, p).
//
// Canonical model:
//   - RandomSparse: Erdős–Rényi-like; include each unordered pair {i,j}, i<j,
//     independently with probability p. The result may be disconnected.
//   - RandomConnected: a uniformly shuffled random spanning tree (each node
//     i ≥ 1 in shuffled order attaches to a random earlier node) followed by
//     RandomSparse-style extra edges over the remaining pairs. Always connected.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - RandomSparse needs cfg.rng when 0 < p < 1; RandomConnected always needs
//     it when n > 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, j asc; deterministic for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ghs/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomConnected   = "RandomConnected"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addNodes(g, cfg, n)

		return sparseEdges(g, cfg, methodRandomSparse, ids, p)
	}
}

// RandomConnected returns a Constructor that builds a connected random graph:
// a random spanning tree plus extra edges with probability p.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomConnected, "n", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomConnected, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && n > 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}

		ids := addNodes(g, cfg, n)
		if n == 1 {
			return nil
		}

		// Random spanning tree over a shuffled order.
		order := cfg.rng.Perm(n)
		for k := 1; k < n; k++ {
			u := ids[order[k]]
			v := ids[order[cfg.rng.Intn(k)]]
			if err := addEdge(g, cfg, methodRandomConnected, u, v); err != nil {
				return err
			}
		}

		return sparseEdges(g, cfg, methodRandomConnected, ids, p)
	}
}

// sparseEdges runs one Bernoulli(p) trial per unlinked pair {i,j}, i<j.
func sparseEdges(g *core.Graph, cfg builderConfig, method string, ids []core.NodeID, p float64) error {
	if p == probMin {
		return nil
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if g.HasEdge(ids[i], ids[j]) {
				continue
			}
			if cfg.rng != nil && p < probMax && cfg.rng.Float64() >= p {
				continue
			}
			if err := addEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
