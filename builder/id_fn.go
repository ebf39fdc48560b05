// Package builder provides internal helper functions and types
// for configuring ID schemes in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ghs/core"
)

// IDFn generates a node identifier from its zero-based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same id.
type IDFn func(idx int) core.NodeID

// DefaultIDFn returns idx+1, e.g. 0→1, 41→42.
// Never panics for idx ≥ 0.
func DefaultIDFn(idx int) core.NodeID {
	return core.NodeID(idx + 1)
}

// OffsetIDFn returns base+idx.
func OffsetIDFn(base core.NodeID) IDFn {
	return func(idx int) core.NodeID {
		return base + core.NodeID(idx)
	}
}

// StrideIDFn returns base+idx*step. Panics if step == 0.
func StrideIDFn(base, step core.NodeID) IDFn {
	if step == 0 {
		panic("StrideIDFn: step must be > 0")
	}
	return func(idx int) core.NodeID {
		return base + core.NodeID(idx)*step
	}
}

// PermutedIDFn assigns the ids 1..n in a seeded random order, so that the
// id of a node carries no information about its position in the topology.
// Panics if n < 1; the returned IDFn panics for idx outside [0,n).
func PermutedIDFn(n int, seed int64) IDFn {
	if n < 1 {
		panic(fmt.Sprintf("PermutedIDFn: n must be ≥ 1, got %d", n))
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	return func(idx int) core.NodeID {
		if idx < 0 || idx >= n {
			panic(fmt.Sprintf("PermutedIDFn: idx must be in [0,%d), got %d", n, idx))
		}
		return core.NodeID(perm[idx] + 1)
	}
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithOffsetIDs sets the ID scheme to OffsetIDFn(base).
func WithOffsetIDs(base core.NodeID) BuilderOption {
	return WithIDScheme(OffsetIDFn(base))
}

// WithPermutedIDs sets the ID scheme to PermutedIDFn(n, seed).
func WithPermutedIDs(n int, seed int64) BuilderOption {
	return WithIDScheme(PermutedIDFn(n, seed))
}

// WithStrideIDs sets the ID scheme to StrideIDFn(base, step).
func WithStrideIDs(base, step core.NodeID) BuilderOption {
	return WithIDScheme(StrideIDFn(base, step))
}
