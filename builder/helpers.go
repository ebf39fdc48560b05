// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/ghs/core"
)

// addNodes inserts idFn(0..n-1) into g and returns the ids in index order.
// Complexity: O(n).
func addNodes(g *core.Graph, cfg builderConfig, n int) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddNode(ids[i])
	}

	return ids
}

// addEdge links u and v with the next configured weight, wrapping any core
// error with the constructor name.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v core.NodeID) error {
	w := cfg.nextWeight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// tooFew formats the uniform "parameter too small" error.
func tooFew(method, name string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
}
