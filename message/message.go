package message

import (
	"fmt"

	"github.com/katalvlaran/ghs/core"
)

// Flag names a protocol message kind.
type Flag uint8

// The fixed protocol vocabulary.
const (
	FlagPulse Flag = iota // begin/continue a phase
	FlagFrag              // "what fragment are you in?"
	FlagRFrag             // reply to FRAG
	FlagMCOE              // best candidate flowing toward the root
	FlagAck               // chosen edge broadcast down the tree
	FlagMerge             // merge invitation across the chosen edge
	FlagNew               // new root / fragment id flowing down
	FlagEcho              // completion of a step flowing up
	FlagDisp              // finalization sweep flowing down
	FlagRDisp             // finalization ack flowing up
)

// Flags lists every flag in declaration order.
var Flags = []Flag{
	FlagPulse, FlagFrag, FlagRFrag, FlagMCOE, FlagAck,
	FlagMerge, FlagNew, FlagEcho, FlagDisp, FlagRDisp,
}

var flagNames = [...]string{
	FlagPulse: "PULSE",
	FlagFrag:  "FRAG",
	FlagRFrag: "RFRAG",
	FlagMCOE:  "MCOE",
	FlagAck:   "ACK",
	FlagMerge: "MERGE",
	FlagNew:   "NEW",
	FlagEcho:  "ECHO",
	FlagDisp:  "DISP",
	FlagRDisp: "RDISP",
}

// String returns the upper-case wire name of the flag.
func (f Flag) String() string {
	if int(f) < len(flagNames) {
		return flagNames[f]
	}

	return fmt.Sprintf("Flag(%d)", uint8(f))
}

// Payload is the flag-specific content of a message.
type Payload interface {
	Flag() Flag
	sealed()
}

// Pulse starts or continues a phase inside a fragment.
type Pulse struct{}

// Frag asks a neighbor for its fragment id.
type Frag struct{}

// RFrag answers a Frag with the responder's fragment id.
type RFrag struct {
	Fragment core.NodeID
}

// MCOE reports the best outgoing candidate of a subtree; nil means none.
type MCOE struct {
	Edge *core.Edge
}

// Ack broadcasts the edge the fragment root selected.
type Ack struct {
	Edge core.Edge
}

// Merge invites the fragment on the other side of the chosen edge.
type Merge struct {
	Fragment core.NodeID
}

// New announces a new fragment id after a merge. Late is set when the
// sender's fragment is already running the phase, so the receiving subtree
// joins it through ECHO and PULSE instead of founding it.
type New struct {
	Fragment core.NodeID
	Late     bool
}

// Echo reports completion of a step to the father.
type Echo struct{}

// Disp starts the finalization sweep.
type Disp struct{}

// RDisp acknowledges the finalization sweep.
type RDisp struct{}

func (Pulse) Flag() Flag { return FlagPulse }
func (Frag) Flag() Flag  { return FlagFrag }
func (RFrag) Flag() Flag { return FlagRFrag }
func (MCOE) Flag() Flag  { return FlagMCOE }
func (Ack) Flag() Flag   { return FlagAck }
func (Merge) Flag() Flag { return FlagMerge }
func (New) Flag() Flag   { return FlagNew }
func (Echo) Flag() Flag  { return FlagEcho }
func (Disp) Flag() Flag  { return FlagDisp }
func (RDisp) Flag() Flag { return FlagRDisp }

func (Pulse) sealed() {}
func (Frag) sealed()  {}
func (RFrag) sealed() {}
func (MCOE) sealed()  {}
func (Ack) sealed()   {}
func (Merge) sealed() {}
func (New) sealed()   {}
func (Echo) sealed()  {}
func (Disp) sealed()  {}
func (RDisp) sealed() {}

// Envelope is a payload in transit between two neighbors.
type Envelope struct {
	From  core.NodeID // sender
	To    core.NodeID // destination
	Phase uint32      // sender's phase at send time
	Seq   uint64      // per directed link, starts at 1
	Payload
}

// String renders the envelope for logs and error messages.
func (e Envelope) String() string {
	if e.Payload == nil {
		return fmt.Sprintf("%d->%d <nil> p=%d #%d", e.From, e.To, e.Phase, e.Seq)
	}
	s := fmt.Sprintf("%d->%d %s p=%d #%d", e.From, e.To, e.Flag(), e.Phase, e.Seq)
	switch p := e.Payload.(type) {
	case RFrag:
		s += fmt.Sprintf(" frag=%d", p.Fragment)
	case Merge:
		s += fmt.Sprintf(" frag=%d", p.Fragment)
	case New:
		s += fmt.Sprintf(" frag=%d", p.Fragment)
		if p.Late {
			s += " late"
		}
	case Ack:
		s += " edge=" + p.Edge.String()
	case MCOE:
		if p.Edge == nil {
			s += " edge=none"
		} else {
			s += " edge=" + p.Edge.String()
		}
	}

	return s
}
