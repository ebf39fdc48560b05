// File: graph.go
// Role: mutation and read-only views of the static topology Graph.
// Determinism:
//   - Nodes() sorted by NodeID.
//   - Neighbors() sorted by neighbor NodeID.
//   - Edges() sorted by EdgeOrder, each edge normalized (From < To).
// Concurrency:
//   - Writers take mu.Lock, readers take mu.RLock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNode ensures a node with the given id exists. Idempotent.
// Complexity: O(1).
func (g *Graph) AddNode(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id)
}

func (g *Graph) addNodeLocked(id NodeID) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.adj[id] = make(map[NodeID]float64)
}

// AddEdge links u and v with weight w, creating missing endpoints.
//
// Errors:
//   - ErrLoopNotAllowed if u == v.
//   - ErrBadWeight if w is NaN or ±Inf.
//   - ErrMultiEdgeNotAllowed if {u,v} is already linked.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v NodeID, w float64) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("AddEdge(%d,%d): weight %v: %w", u, v, w, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, linked := g.adj[u][v]; linked {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.addNodeLocked(u)
	g.addNodeLocked(v)
	g.adj[u][v] = w
	g.adj[v][u] = w
	g.edgeCount++

	return nil
}

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether u and v are linked.
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the weight of edge {u,v}.
// Returns ErrNodeNotFound if either endpoint is missing or the pair is not linked.
func (g *Graph) Weight(u, v NodeID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[u][v]
	if !ok {
		return 0, fmt.Errorf("Weight(%d,%d): %w", u, v, ErrNodeNotFound)
	}

	return w, nil
}

// Order returns the number of nodes.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Size returns the number of undirected edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Neighbors returns the incident links of id sorted by neighbor id.
// Returns ErrNodeNotFound if id is not in the graph.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id NodeID) ([]Neighbor, error) {
	g.mu.RLock()
	row, ok := g.adj[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]Neighbor, 0, len(row))
	for v, w := range row {
		out = append(out, Neighbor{ID: v, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns only the ids of id's neighbors, ascending.
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]NodeID, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}

	return ids, nil
}

// Edges returns every undirected edge once, normalized and sorted by EdgeOrder.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, row := range g.adj {
		for v, w := range row {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })

	return out
}

// DistinctWeights reports whether no two edges share a weight. The protocol
// is correct either way thanks to the endpoint tie-break; callers that want
// the classical precondition can check it here.
func (g *Graph) DistinctWeights() bool {
	seen := make(map[float64]struct{}, g.Size())
	for _, e := range g.Edges() {
		if _, dup := seen[e.Weight]; dup {
			return false
		}
		seen[e.Weight] = struct{}{}
	}

	return true
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	for id := range g.nodes {
		c.addNodeLocked(id)
	}
	for u, row := range g.adj {
		for v, w := range row {
			c.adj[u][v] = w
		}
	}
	c.edgeCount = g.edgeCount

	return c
}
