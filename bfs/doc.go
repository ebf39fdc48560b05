// Package bfs walks a core.Graph breadth-first. The simulator uses it to
// refuse disconnected topologies before a run and, restricted to the tree
// links with WithLinks, to check that a result spans the graph, to measure
// the tree's height and to match every node's father against its parent in
// the walk from the root.
//
// A walk returns a Result with the visit Order, the hop Depth of every
// reached node and its Parent. Weights are ignored.
//
// Determinism
//
//	core.Graph.NeighborIDs returns ids in ascending order and neighbors are
//	queued in that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E log d) (neighbor lists are sorted on retrieval)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrStartNotFound  if the start node does not exist.
//   - ErrNeighbors      if the graph cannot list a node's links.
//   - the context's error, and wrapped errors from the visit hook.
package bfs
