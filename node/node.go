package node

import (
	"fmt"

	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/message"
)

// Topology is the neighbor-discovery collaborator. *core.Graph implements it.
type Topology interface {
	Neighbors(id core.NodeID) ([]core.Neighbor, error)
}

type idSet map[core.NodeID]struct{}

func (s idSet) has(id core.NodeID) bool {
	_, ok := s[id]
	return ok
}

// pendingEnvelope is an ingested envelope not yet acted on.
type pendingEnvelope struct {
	env      message.Envelope
	reported bool // EventDeferred already raised
}

// Node is one participant of the protocol. It is not safe for concurrent
// use; the scheduler steps each node from one goroutine at a time.
type Node struct {
	id      core.NodeID
	weights map[core.NodeID]float64
	order   []core.NodeID // neighbors, ascending

	frag   core.NodeID
	father Father
	sons   []core.NodeID // insertion order, no duplicates
	status Status
	phase  uint32

	pulsed   bool // PULSE handled in the current phase
	reported bool // MCOE sent (or decision taken at the root)
	best     *core.Edge
	via      core.NodeID // son that supplied best
	hasVia   bool

	probing   idSet // outstanding FRAG replies
	mcoeFrom  idSet // sons that reported this phase
	echoFrom  idSet // sons that echoed NEW
	rdispFrom idSet // sons that acknowledged DISP
	late      idSet // sons absorbed at BEGIN, not yet echoed

	// joining is set while a ROOT node relays a late NEW: its fragment
	// already runs the phase, so same-phase MERGEs wait for ACK.
	joining bool

	invitations []Invitation
	finishing   bool
	terminated  bool

	pending []pendingEnvelope
	sentSeq map[core.NodeID]uint64
	recvSeq map[core.NodeID]uint64

	round  uint64
	cur    *message.Envelope // envelope being handled, for error context
	out    []message.Envelope
	events []Event
	err    error // sticky
}

// New creates the node id with the neighbors reported by topo. The node
// starts as a singleton fragment: fragment id = id, father = self, INIT.
func New(id core.NodeID, topo Topology) (*Node, error) {
	if topo == nil {
		return nil, fmt.Errorf("node.New(%d): nil topology: %w", id, ErrTopologyViolation)
	}
	nbs, err := topo.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("node.New(%d): %w: %w", id, ErrTopologyViolation, err)
	}

	n := &Node{
		id:        id,
		weights:   make(map[core.NodeID]float64, len(nbs)),
		order:     make([]core.NodeID, 0, len(nbs)),
		frag:      id,
		father:    RootFather(),
		status:    StatusInit,
		probing:   make(idSet),
		mcoeFrom:  make(idSet),
		echoFrom:  make(idSet),
		rdispFrom: make(idSet),
		late:      make(idSet),
		sentSeq:   make(map[core.NodeID]uint64, len(nbs)),
		recvSeq:   make(map[core.NodeID]uint64, len(nbs)),
	}
	for _, nb := range nbs {
		if nb.ID == id {
			return nil, fmt.Errorf("node.New(%d): self-link: %w", id, ErrTopologyViolation)
		}
		if _, dup := n.weights[nb.ID]; dup {
			return nil, fmt.Errorf("node.New(%d): duplicate neighbor %d: %w", id, nb.ID, ErrTopologyViolation)
		}
		n.weights[nb.ID] = nb.Weight
		n.order = append(n.order, nb.ID)
	}

	return n, nil
}

// ID returns the node's identifier.
func (n *Node) ID() core.NodeID { return n.id }

// Terminated reports whether this node raised the termination signal.
func (n *Node) Terminated() bool { return n.terminated }

// Err returns the violation that stopped the node, if any.
func (n *Node) Err() error { return n.err }

// Snapshot returns a copy of the node's current state.
func (n *Node) Snapshot() Snapshot {
	s := Snapshot{
		ID:         n.id,
		Fragment:   n.frag,
		Father:     n.father,
		Sons:       append([]core.NodeID(nil), n.sons...),
		Status:     n.status,
		Phase:      n.phase,
		Pending:    len(n.pending),
		Terminated: n.terminated,
	}
	if n.best != nil {
		b := *n.best
		s.Best = &b
	}

	return s
}

// Step ingests the envelopes delivered since the previous round, acts on
// every envelope the causal filter admits, and returns what to send and the
// events raised. The first step of a node starts its first phase.
//
// Errors are always *ViolationError; after one, the node is stopped and
// every later Step returns the same error.
func (n *Node) Step(round uint64, inbox []message.Envelope) (StepResult, error) {
	if n.err != nil {
		return StepResult{}, n.err
	}
	n.round = round
	n.out, n.events = nil, nil

	for i := range inbox {
		if err := n.intake(inbox[i]); err != nil {
			return n.abort(err)
		}
	}
	if n.status == StatusInit {
		n.status = StatusBegin
		if err := n.startPhase(); err != nil {
			return n.abort(err)
		}
	}
	if err := n.drain(); err != nil {
		return n.abort(err)
	}

	res := StepResult{Messages: n.out, Events: n.events}
	n.out, n.events = nil, nil

	return res, nil
}

func (n *Node) abort(err error) (StepResult, error) {
	n.err = err
	n.out, n.events = nil, nil

	return StepResult{}, err
}

// intake validates addressing and the per-link sequence, then buffers.
func (n *Node) intake(env message.Envelope) error {
	n.cur = &env
	defer func() { n.cur = nil }()

	if env.To != n.id {
		return n.fail(ErrTopologyViolation, "envelope addressed to %d", env.To)
	}
	if _, ok := n.weights[env.From]; !ok {
		return n.fail(ErrTopologyViolation, "sender %d is not a neighbor", env.From)
	}
	if env.Payload == nil {
		return n.fail(ErrProtocolViolation, "empty payload")
	}
	last := n.recvSeq[env.From]
	if env.Seq <= last {
		return n.fail(ErrProtocolViolation, "replayed envelope: seq %d, last ingested %d", env.Seq, last)
	}
	if env.Seq != last+1 {
		return n.fail(ErrProtocolViolation, "sequence gap: seq %d after %d", env.Seq, last)
	}
	n.recvSeq[env.From] = env.Seq
	n.pending = append(n.pending, pendingEnvelope{env: env})

	return nil
}

// admissible is the causal filter.
func (n *Node) admissible(env message.Envelope) bool {
	return env.Flag() != message.FlagFrag || env.Phase <= n.phase
}

// drain handles buffered envelopes in arrival order, always taking the
// earliest admissible one, until none is admissible.
func (n *Node) drain() error {
	for {
		i := -1
		for k := range n.pending {
			if n.admissible(n.pending[k].env) {
				i = k
				break
			}
		}
		if i < 0 {
			break
		}
		env := n.pending[i].env
		n.pending = append(n.pending[:i], n.pending[i+1:]...)
		if err := n.dispatch(env); err != nil {
			return err
		}
	}

	for k := range n.pending {
		if !n.pending[k].reported {
			n.pending[k].reported = true
			n.emit(Event{Kind: EventDeferred, Peer: n.pending[k].env.From})
		}
	}

	return nil
}

func (n *Node) dispatch(env message.Envelope) error {
	n.cur = &env
	defer func() { n.cur = nil }()

	switch p := env.Payload.(type) {
	case message.Pulse:
		return n.onPulse(env)
	case message.Frag:
		return n.onFrag(env)
	case message.RFrag:
		return n.onRFrag(env, p)
	case message.MCOE:
		return n.onMCOE(env, p)
	case message.Ack:
		return n.onAck(env, p)
	case message.Merge:
		return n.onMerge(env, p)
	case message.New:
		return n.onNew(env, p)
	case message.Echo:
		return n.onEcho(env)
	case message.Disp:
		return n.onDisp(env)
	case message.RDisp:
		return n.onRDisp(env)
	}

	return n.fail(ErrProtocolViolation, "unknown payload %T", env.Payload)
}

// send stamps a payload with the current phase and the next link sequence.
func (n *Node) send(to core.NodeID, p message.Payload) {
	n.sentSeq[to]++
	n.out = append(n.out, message.Envelope{
		From:    n.id,
		To:      to,
		Phase:   n.phase,
		Seq:     n.sentSeq[to],
		Payload: p,
	})
}

func (n *Node) emit(ev Event) {
	ev.Node = n.id
	ev.Phase = n.phase
	ev.Fragment = n.frag
	ev.Round = n.round
	n.events = append(n.events, ev)
}

func (n *Node) fail(kind error, format string, args ...any) error {
	ve := &ViolationError{
		Kind:   kind,
		Node:   n.id,
		Phase:  n.phase,
		Status: n.status,
		Reason: fmt.Sprintf(format, args...),
	}
	if n.cur != nil {
		m := *n.cur
		ve.Message = &m
	}

	return ve
}

func (n *Node) isSon(id core.NodeID) bool {
	for _, s := range n.sons {
		if s == id {
			return true
		}
	}

	return false
}

// addSon appends id unless already present; it reports whether it did.
func (n *Node) addSon(id core.NodeID) bool {
	if n.isSon(id) {
		return false
	}
	n.sons = append(n.sons, id)

	return true
}

func (n *Node) removeSon(id core.NodeID) {
	for i, s := range n.sons {
		if s == id {
			n.sons = append(n.sons[:i], n.sons[i+1:]...)
			return
		}
	}
}

func (n *Node) enterPhase(p uint32) {
	n.phase = p
	n.pulsed = false
	n.reported = false
}

func (n *Node) treeEdge(son core.NodeID) core.Edge {
	return core.Edge{From: n.id, To: son, Weight: n.weights[son]}
}
