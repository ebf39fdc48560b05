package core

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates an edge whose endpoints are the same node.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between an already linked pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// NodeID identifies a participant. It is unique per node and never reused.
type NodeID uint64

// String renders the identifier in base 10.
func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Edge is an undirected weighted link between two nodes.
//
// From and To are an orientation, not a direction: a fragment that discovers
// an outgoing edge records its own endpoint in From. Compare and Identical
// ignore the orientation.
type Edge struct {
	// From is the endpoint that discovered or reported the edge.
	From NodeID `json:"from" yaml:"from" toml:"from"`

	// To is the opposite endpoint.
	To NodeID `json:"to" yaml:"to" toml:"to"`

	// Weight is the cost of the link.
	Weight float64 `json:"weight" yaml:"weight" toml:"weight"`
}

// Ends returns the endpoints as (min, max).
func (e Edge) Ends() (lo, hi NodeID) {
	if e.From < e.To {
		return e.From, e.To
	}

	return e.To, e.From
}

// Normalized returns the same edge oriented from the smaller endpoint.
func (e Edge) Normalized() Edge {
	lo, hi := e.Ends()

	return Edge{From: lo, To: hi, Weight: e.Weight}
}

// Reversed returns the same edge with From and To swapped.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Connects reports whether the edge links a and b (in either orientation).
func (e Edge) Connects(a, b NodeID) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// String renders the edge as "from--to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d--%d(%g)", e.From, e.To, e.Weight)
}

// Neighbor is one incident link as seen from a node: the node on the other
// side and the weight of the connecting edge.
type Neighbor struct {
	ID     NodeID
	Weight float64
}

// Graph is the static topology: nodes and undirected weighted edges.
//
// adj[u][v] holds the weight of edge {u,v} and is mirrored in adj[v][u].
type Graph struct {
	mu sync.RWMutex // guards nodes, adj and edgeCount

	nodes     map[NodeID]struct{}
	adj       map[NodeID]map[NodeID]float64
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]struct{}),
		adj:   make(map[NodeID]map[NodeID]float64),
	}
}
