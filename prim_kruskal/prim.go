// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root node using a min-heap.
package prim_kruskal

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/ghs/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root node using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrRootNotFound : if the root node does not exist in the graph.
//   - ErrDisconnected : if |V| == 0 or |V| > 1 but the graph is not fully connected.
//
// The heap is ordered by EdgeOrder rather than by bare weight, so the result
// is the unique MST under that order and equals Kruskal's edge for edge.
// The returned edges are normalized and sorted by EdgeOrder.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root core.NodeID) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	nodes := graph.Nodes()
	if len(nodes) == 0 {
		return nil, 0, ErrDisconnected
	}
	if !graph.HasNode(root) {
		return nil, 0, ErrRootNotFound
	}
	if len(nodes) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(nodes)
	visited := make(map[core.NodeID]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	// push adds every link from u to a not-yet-visited node.
	push := func(u core.NodeID) error {
		nbs, err := graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			if !visited[nb.ID] {
				heap.Push(pq, core.Edge{From: u, To: nb.ID, Weight: nb.Weight})
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e.Normalized())
		totalWeight += e.Weight

		if err := push(e.To); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	sort.Slice(mst, func(i, j int) bool { return core.Less(mst[i], mst[j]) })

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min-heap of edges ordered by EdgeOrder.
type edgePQ []core.Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return core.Less(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
