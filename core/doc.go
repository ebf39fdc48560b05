// Package core defines the identifiers, the weighted Edge and its strict
// total order (EdgeOrder), and the static, thread-safe topology Graph that
// every other package of the module builds on.
//
// What lives here
//
//   - NodeID — opaque, totally ordered participant identifier (uint64).
//   - Edge   — an undirected weighted link. From/To carry an orientation that
//     the protocol uses to remember which side discovered the edge; the
//     orientation never takes part in ordering or equality.
//   - Compare / Less / Identical — EdgeOrder: weight ascending, then the pair
//     (min endpoint, max endpoint) lexicographically ascending. Two distinct
//     links never compare equal, which is what lets both endpoints of a
//     candidate edge act on it without consulting each other.
//   - Graph — the topology collaborator: nodes, incident weighted edges and a
//     deterministic Neighbors() view. The graph is simple (no loops, no
//     parallel edges) and undirected by construction.
//
// Determinism
//
//	Nodes() is sorted by NodeID, Neighbors() is sorted by neighbor NodeID and
//	Edges() is sorted by EdgeOrder, so every consumer iterates in the same
//	order on every run.
//
// Concurrency
//
//	Graph guards its maps with a sync.RWMutex. A Graph is normally fully
//	built before a run starts and only read afterwards; concurrent readers
//	(parallel node stepping) never contend with writers in that case.
//
// Errors:
//
//	ErrNodeNotFound        – requested node does not exist.
//	ErrLoopNotAllowed      – edge from a node to itself.
//	ErrMultiEdgeNotAllowed – second edge between the same pair of nodes.
//	ErrBadWeight           – NaN or infinite weight.
package core
