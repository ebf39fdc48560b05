// File: protocol.go
// Role: the per-flag handlers and the phase transitions they drive.
// Invariants:
//   - frag changes only on ACK (boundary endpoint) and NEW (new root).
//   - phase changes only on NEW (adopt) and on a won arbitration (+1).
//   - a same-phase MERGE joins at once only while the fragment is forming;
//     once any part of it sends FRAG, the MERGE waits for ACK.
//   - a node reports once per phase, after every RFRAG and every
//     son's MCOE, late sons included.

package node

import (
	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/message"
)

// startPhase is run by a fragment root in BEGIN.
func (n *Node) startPhase() error {
	n.emit(Event{Kind: EventPhaseStarted})

	return n.pulse()
}

// pulse resets the phase bookkeeping, pulses the sons and sends FRAG to every
// non-tree neighbor.
func (n *Node) pulse() error {
	n.pulsed = true
	n.reported = false
	n.best, n.hasVia = nil, false
	clear(n.probing)
	clear(n.mcoeFrom)

	for _, s := range n.sons {
		if !n.late.has(s) {
			n.send(s, message.Pulse{})
		}
	}
	for _, v := range n.order {
		if n.father.Is(v) || n.isSon(v) {
			continue
		}
		n.probing[v] = struct{}{}
		n.send(v, message.Frag{})
	}

	// A leaf whose only link is its father reports at once.
	return n.tryReport()
}

func (n *Node) onPulse(env message.Envelope) error {
	if !n.father.Is(env.From) {
		return n.fail(ErrProtocolViolation, "PULSE from %d, father is %s", env.From, n.father)
	}
	if n.status != StatusBegin || n.pulsed {
		return n.fail(ErrProtocolViolation, "PULSE while not awaiting one")
	}
	if env.Phase != n.phase {
		return n.fail(ErrProtocolViolation, "PULSE for phase %d", env.Phase)
	}

	return n.pulse()
}

func (n *Node) onFrag(env message.Envelope) error {
	n.send(env.From, message.RFrag{Fragment: n.frag})

	return nil
}

func (n *Node) onRFrag(env message.Envelope, p message.RFrag) error {
	if !n.probing.has(env.From) {
		return n.fail(ErrProtocolViolation, "unsolicited RFRAG")
	}
	delete(n.probing, env.From)

	if p.Fragment != n.frag {
		cand := core.Edge{From: n.id, To: env.From, Weight: n.weights[env.From]}
		if err := n.consider(cand, 0, false); err != nil {
			return err
		}
	}

	return n.tryReport()
}

func (n *Node) onMCOE(env message.Envelope, p message.MCOE) error {
	switch {
	case !n.isSon(env.From) || n.late.has(env.From):
		return n.fail(ErrProtocolViolation, "MCOE from %d which is not a synchronised son", env.From)
	case !n.pulsed || n.reported:
		return n.fail(ErrProtocolViolation, "MCOE outside the reporting window")
	case n.mcoeFrom.has(env.From):
		return n.fail(ErrProtocolViolation, "second MCOE from %d", env.From)
	}
	n.mcoeFrom[env.From] = struct{}{}

	if p.Edge != nil {
		if err := n.consider(*p.Edge, env.From, true); err != nil {
			return err
		}
	}

	return n.tryReport()
}

// consider keeps the smaller of the current best and cand under EdgeOrder.
func (n *Node) consider(cand core.Edge, via core.NodeID, hasVia bool) error {
	if n.best != nil {
		switch c := core.Compare(cand, *n.best); {
		case c > 0:
			return nil
		case c == 0 && core.Identical(cand, *n.best):
			return n.fail(ErrProtocolViolation, "candidate %v reported twice", cand)
		case c == 0:
			return n.fail(ErrOrderingViolation, "distinct edges %v and %v compare equal", cand, *n.best)
		}
	}
	n.best = &cand
	n.via, n.hasVia = via, hasVia

	return nil
}

// tryReport sends MCOE to the father, or decides at the root, once every
// FRAG is answered and every son has reported.
func (n *Node) tryReport() error {
	if !n.pulsed || n.reported || len(n.probing) > 0 {
		return nil
	}
	for _, s := range n.sons {
		if !n.mcoeFrom.has(s) {
			return nil
		}
	}
	n.reported = true

	if id, ok := n.father.ID(); ok {
		var e *core.Edge
		if n.best != nil {
			b := *n.best
			e = &b
		}
		n.send(id, message.MCOE{Edge: e})

		return nil
	}

	if n.best == nil {
		n.finishing = true
		return n.disperse()
	}
	n.emit(Event{Kind: EventEdgeChosen, Edge: *n.best})

	return n.acknowledge(*n.best)
}

func (n *Node) onAck(env message.Envelope, p message.Ack) error {
	if !n.father.Is(env.From) {
		return n.fail(ErrProtocolViolation, "ACK from %d, father is %s", env.From, n.father)
	}
	if n.status != StatusBegin || !n.pulsed || !n.reported {
		return n.fail(ErrProtocolViolation, "ACK before reporting")
	}

	return n.acknowledge(p.Edge)
}

// acknowledge forwards the chosen edge, adopts its inner endpoint as the
// fragment id and, on the path to the edge, turns the tree around.
func (n *Node) acknowledge(e core.Edge) error {
	for _, s := range n.sons {
		n.send(s, message.Ack{Edge: e})
	}
	n.frag = e.From
	n.status = StatusReady

	if n.best != nil && core.Identical(*n.best, e) {
		if id, ok := n.father.ID(); ok {
			n.addSon(id)
		}
		if n.hasVia {
			n.father = FatherOf(n.via)
			n.removeSon(n.via)
		} else {
			if e.From != n.id {
				return n.fail(ErrProtocolViolation, "self-discovered edge %v does not start here", e)
			}
			n.father = RootFather()
			n.send(e.To, message.Merge{Fragment: n.frag})
		}
	}
	b := e
	n.best = &b

	return n.processInvitations()
}

// processInvitations attaches every MERGE deferred during this phase, then
// arbitrates them in arrival order.
func (n *Node) processInvitations() error {
	if len(n.invitations) == 0 {
		return nil
	}
	invs := n.invitations
	n.invitations = nil

	for _, inv := range invs {
		if inv.Phase != n.phase {
			return n.fail(ErrProtocolViolation, "deferred MERGE from %d for phase %d", inv.From, inv.Phase)
		}
		if !n.addSon(inv.From) {
			return n.fail(ErrProtocolViolation, "MERGE from existing son %d", inv.From)
		}
	}
	for _, inv := range invs {
		won, err := n.arbitrate(inv)
		if err != nil || won {
			return err
		}
	}

	return nil
}

func (n *Node) onMerge(env message.Envelope, p message.Merge) error {
	inv := Invitation{From: env.From, Fragment: p.Fragment, Phase: env.Phase}

	switch {
	case env.Phase > n.phase:
		return n.fail(ErrProtocolViolation, "MERGE from a phase ahead")

	case n.status == StatusReady:
		if !n.addSon(env.From) {
			return n.fail(ErrProtocolViolation, "MERGE from existing son %d", env.From)
		}
		_, err := n.arbitrate(inv)
		return err

	case n.status == StatusInit:
		return n.fail(ErrProtocolViolation, "MERGE before start")

	case env.Phase == n.phase && n.status == StatusRoot && !n.joining:
		// The fragment is still forming for this phase and nobody in it
		// has sent FRAG yet: join at once.
		if !n.addSon(env.From) {
			return n.fail(ErrProtocolViolation, "MERGE from existing son %d", env.From)
		}
		n.send(env.From, message.New{Fragment: n.frag})
		n.emit(Event{Kind: EventAbsorbed, Peer: env.From})
		return nil

	case env.Phase == n.phase:
		// Same phase while the own edge is undecided: wait for ACK.
		for _, prev := range n.invitations {
			if prev.From == env.From {
				return n.fail(ErrProtocolViolation, "second MERGE from %d", env.From)
			}
		}
		n.invitations = append(n.invitations, inv)
		return nil
	}

	// Lower phase: absorb.
	if n.status == StatusBegin && n.reported {
		return n.fail(ErrProtocolViolation, "lower-phase MERGE after reporting")
	}
	if !n.addSon(env.From) {
		return n.fail(ErrProtocolViolation, "MERGE from existing son %d", env.From)
	}
	if n.status == StatusBegin {
		n.late[env.From] = struct{}{}
	}
	n.send(env.From, message.New{Fragment: n.frag, Late: n.status == StatusBegin || n.joining})
	n.emit(Event{Kind: EventAbsorbed, Peer: env.From})

	return nil
}

// arbitrate decides a mutual choice: a root whose chosen edge leads to the
// inviter wins iff its fragment id is the smaller one.
func (n *Node) arbitrate(inv Invitation) (bool, error) {
	if !n.father.IsRoot() || n.best == nil || !n.best.Connects(n.id, inv.From) {
		return false, nil
	}
	if n.frag == inv.Fragment {
		return false, n.fail(ErrProtocolViolation, "both sides of %v claim fragment %d", *n.best, n.frag)
	}
	if n.frag > inv.Fragment {
		return false, nil
	}

	n.status = StatusRoot
	n.joining = false
	n.enterPhase(n.phase + 1)
	n.best, n.hasVia = nil, false
	clear(n.echoFrom)
	n.emit(Event{Kind: EventMergeWon, Peer: inv.From})
	for _, s := range n.sons {
		n.send(s, message.New{Fragment: n.frag})
	}

	return true, nil
}

func (n *Node) onNew(env message.Envelope, p message.New) error {
	if n.status != StatusReady {
		return n.fail(ErrProtocolViolation, "NEW while not READY")
	}
	if env.Phase < n.phase {
		return n.fail(ErrProtocolViolation, "NEW from an older phase")
	}
	if n.father.IsRoot() {
		if n.best == nil || !n.best.Connects(n.id, env.From) {
			return n.fail(ErrProtocolViolation, "NEW from %d across an edge not chosen", env.From)
		}
	} else if !n.father.Is(env.From) {
		return n.fail(ErrProtocolViolation, "NEW from %d, father is %s", env.From, n.father)
	}

	n.father = FatherOf(env.From)
	n.removeSon(env.From)
	n.frag = p.Fragment
	n.joining = p.Late
	n.enterPhase(env.Phase)
	n.best, n.hasVia = nil, false
	clear(n.echoFrom)
	n.emit(Event{Kind: EventNewFragment, Peer: env.From})

	for _, s := range n.sons {
		n.send(s, message.New{Fragment: n.frag, Late: n.joining})
	}
	if len(n.sons) == 0 {
		n.status = StatusBegin
		n.send(env.From, message.Echo{})

		return nil
	}
	n.status = StatusRoot

	return nil
}

func (n *Node) onEcho(env message.Envelope) error {
	if !n.isSon(env.From) {
		return n.fail(ErrProtocolViolation, "ECHO from %d which is not a son", env.From)
	}

	if n.late.has(env.From) {
		if n.status != StatusBegin || n.reported {
			return n.fail(ErrProtocolViolation, "late ECHO after reporting")
		}
		delete(n.late, env.From)
		// Unpulsed: the coming PULSE will include it.
		if n.pulsed {
			n.send(env.From, message.Pulse{})
		}
		return nil
	}

	if n.status != StatusRoot {
		return n.fail(ErrProtocolViolation, "ECHO while not collecting")
	}
	if n.echoFrom.has(env.From) {
		return n.fail(ErrProtocolViolation, "second ECHO from %d", env.From)
	}
	n.echoFrom[env.From] = struct{}{}
	for _, s := range n.sons {
		if !n.echoFrom.has(s) {
			return nil
		}
	}

	n.status = StatusBegin
	if id, ok := n.father.ID(); ok {
		n.send(id, message.Echo{})
		return nil
	}

	return n.startPhase()
}

// disperse emits this node's tree edges and pushes DISP down; a leaf
// answers at once.
func (n *Node) disperse() error {
	for _, s := range n.sons {
		n.emit(Event{Kind: EventTreeEdge, Edge: n.treeEdge(s)})
		n.send(s, message.Disp{})
	}
	if len(n.sons) > 0 {
		return nil
	}
	if id, ok := n.father.ID(); ok {
		n.send(id, message.RDisp{})
		return nil
	}

	return n.terminate()
}

func (n *Node) onDisp(env message.Envelope) error {
	if !n.father.Is(env.From) {
		return n.fail(ErrProtocolViolation, "DISP from %d, father is %s", env.From, n.father)
	}
	if n.status != StatusBegin || !n.reported || n.finishing {
		return n.fail(ErrProtocolViolation, "DISP outside the final sweep")
	}
	n.finishing = true

	return n.disperse()
}

func (n *Node) onRDisp(env message.Envelope) error {
	switch {
	case !n.isSon(env.From):
		return n.fail(ErrProtocolViolation, "RDISP from %d which is not a son", env.From)
	case !n.finishing:
		return n.fail(ErrProtocolViolation, "RDISP before DISP")
	case n.rdispFrom.has(env.From):
		return n.fail(ErrProtocolViolation, "second RDISP from %d", env.From)
	}
	n.rdispFrom[env.From] = struct{}{}
	for _, s := range n.sons {
		if !n.rdispFrom.has(s) {
			return nil
		}
	}

	if id, ok := n.father.ID(); ok {
		n.send(id, message.RDisp{})
		return nil
	}

	return n.terminate()
}

func (n *Node) terminate() error {
	if n.terminated {
		return n.fail(ErrProtocolViolation, "termination raised twice")
	}
	n.terminated = true
	n.emit(Event{Kind: EventTerminated})

	return nil
}
