package node

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/message"
)

// Sentinel error kinds. Every *ViolationError unwraps to exactly one of them.
var (
	// ErrProtocolViolation indicates a message invalid for the receiver's
	// status or phase, a duplicate acknowledgement, or a replayed envelope.
	ErrProtocolViolation = errors.New("node: protocol violation")

	// ErrOrderingViolation indicates that two distinct edges compared equal.
	ErrOrderingViolation = errors.New("node: ordering violation")

	// ErrTopologyViolation indicates a message from a non-neighbor, a message
	// addressed to another node, or an unresolvable reference.
	ErrTopologyViolation = errors.New("node: topology violation")
)

// Status is the coarse protocol state of a node.
type Status uint8

const (
	// StatusInit is the state before the first step.
	StatusInit Status = iota
	// StatusBegin covers pulse, probing and reporting.
	StatusBegin
	// StatusReady means the fragment chose its edge and the node waits for NEW.
	StatusReady
	// StatusRoot means the node adopted NEW and waits for its sons' ECHO.
	StatusRoot
)

var statusNames = [...]string{"INIT", "BEGIN", "READY", "ROOT"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Father is either the node itself (it is the root of its fragment) or a
// neighbor. The zero value is the root.
type Father struct {
	id  core.NodeID
	set bool
}

// RootFather is the father value of a fragment root.
func RootFather() Father { return Father{} }

// FatherOf returns a father pointing at id.
func FatherOf(id core.NodeID) Father { return Father{id: id, set: true} }

// IsRoot reports whether the node is the root of its fragment.
func (f Father) IsRoot() bool { return !f.set }

// ID returns the father's id; ok is false for a root.
func (f Father) ID() (id core.NodeID, ok bool) { return f.id, f.set }

// Is reports whether the father is the given neighbor.
func (f Father) Is(id core.NodeID) bool { return f.set && f.id == id }

func (f Father) String() string {
	if !f.set {
		return "self"
	}

	return f.id.String()
}

// Invitation is a MERGE that arrived before the node decided its own edge.
type Invitation struct {
	From     core.NodeID
	Fragment core.NodeID
	Phase    uint32
}

// EventKind classifies the structured events a node raises.
type EventKind uint8

const (
	// EventPhaseStarted: a fragment root pulsed a new phase.
	EventPhaseStarted EventKind = iota
	// EventEdgeChosen: a fragment root selected its minimum outgoing edge.
	EventEdgeChosen
	// EventMergeWon: a root won arbitration and founded the next phase.
	EventMergeWon
	// EventAbsorbed: a lower-phase fragment was attached and sent NEW.
	EventAbsorbed
	// EventNewFragment: the node adopted a new fragment id and phase.
	EventNewFragment
	// EventDeferred: a FRAG had to wait for the local phase to catch up.
	EventDeferred
	// EventTreeEdge: one father–son link of the final tree.
	EventTreeEdge
	// EventTerminated: the global root detected termination.
	EventTerminated
)

var eventNames = [...]string{
	"phase-started", "edge-chosen", "merge-won", "absorbed",
	"new-fragment", "deferred", "tree-edge", "terminated",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}

	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a structured notification raised by Step.
type Event struct {
	Kind     EventKind
	Round    uint64
	Node     core.NodeID
	Phase    uint32
	Fragment core.NodeID
	// Peer is the other side for EventAbsorbed and EventMergeWon.
	Peer core.NodeID
	// Edge is set for EventEdgeChosen and EventTreeEdge.
	Edge core.Edge
}

// StepResult is what one Step produced.
type StepResult struct {
	Messages []message.Envelope
	Events   []Event
}

// Snapshot is a read-only copy of a node's state.
type Snapshot struct {
	ID         core.NodeID
	Fragment   core.NodeID
	Father     Father
	Sons       []core.NodeID
	Status     Status
	Phase      uint32
	Best       *core.Edge
	Pending    int
	Terminated bool
}

// ViolationError describes a fatal inconsistency detected by a node.
type ViolationError struct {
	Kind    error // one of the Err*Violation sentinels
	Node    core.NodeID
	Phase   uint32
	Status  Status
	Message *message.Envelope // nil when not tied to a message
	Reason  string
}

func (e *ViolationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: node %d phase %d status %s: %s", e.Kind, e.Node, e.Phase, e.Status, e.Reason)
	if e.Message != nil {
		fmt.Fprintf(&b, " [%s]", e.Message)
	}

	return b.String()
}

func (e *ViolationError) Unwrap() error { return e.Kind }
