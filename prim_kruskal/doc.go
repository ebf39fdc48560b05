// Package prim_kruskal provides the sequential Minimum Spanning Tree algorithms,
// Prim and Kruskal, over an undirected weighted *core.Graph.
//
// Role in this module
//
//	The distributed fragment-merging construction is verified against these
//	references: for a connected graph, the tree it builds must equal the
//	Kruskal/Prim tree edge for edge and in total weight.
//
// Ordering
//
//	Both algorithms order edges by core.Compare (weight, then the normalized
//	endpoint pair). Under that strict total order the MST is unique, so the
//	two algorithms and the distributed protocol agree even when weights repeat.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//     Sort all edges, merge components with a Disjoint-Set (union by rank,
//     path compression), stop at |V|−1 edges.
//     Time O(E log E + α(V)·E), Space O(V + E).
//
//   - Prim(g *core.Graph, root core.NodeID) ([]core.Edge, float64, error)
//     Grow a single tree from root with a min-heap of crossing edges.
//     Time O(E log V), Space O(V + E).
//
//   - Compute(g, opts...) dispatches on WithMethod (default Kruskal).
//
// Error Conditions
//
//   - ErrInvalidGraph  – graph is nil or the method is unknown.
//   - ErrRootNotFound  – Prim root not in the graph.
//   - ErrDisconnected  – |V| == 0, or |V| > 1 and the graph is not connected.
//
// Returned edges are normalized (From < To) and sorted by EdgeOrder.
package prim_kruskal
