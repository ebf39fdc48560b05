// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It is the sequential reference the distributed construction is checked against.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/ghs/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate graph != nil.
//  2. Retrieve sorted node IDs; if none → ErrDisconnected; one → trivial MST.
//  3. Collect all edges via graph.Edges() (already sorted by EdgeOrder).
//  4. Initialize DSU maps parent[] and rank[] for each node.
//  5. Loop over sorted edges: if find(u) != find(v), union and include edge in MST.
//  6. If MST edge count < |V|-1 → ErrDisconnected.
//
// Ties in weight are broken by EdgeOrder, the same order the distributed
// protocol uses, so both produce the same tree even for repeated weights.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	nodes := graph.Nodes()
	if len(nodes) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(nodes) == 1 {
		return []core.Edge{}, 0, nil
	}

	// Edges() is normalized and sorted by EdgeOrder; keep the sort explicit so
	// the contract does not silently depend on the view.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return core.Less(edges[i], edges[j])
	})

	parent := make(map[core.NodeID]core.NodeID, len(nodes))
	rank := make(map[core.NodeID]int, len(nodes))
	for _, id := range nodes {
		parent[id] = id
		rank[id] = 0
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v core.NodeID) {
		rootU := find(u)
		rootV := find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	var (
		mst         = make([]core.Edge, 0, len(nodes)-1)
		totalWeight float64
		numVerts    = len(nodes)
	)
	for _, e := range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == numVerts-1 {
				break
			}
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
