// Package node implements the per-participant state machine of the
// fragment-merging minimum spanning tree protocol.
//
// A Node knows only its own id and its incident weighted links. It is
// driven by a round scheduler: once per round Step receives every envelope
// delivered since the previous round and returns the envelopes to send and
// the events raised. A Node never blocks, never shares mutable state and
// never logs; the scheduler turns events into logs and metrics.
//
// Phase protocol
//
//  1. Pulse: the fragment root (and then every node on receiving PULSE)
//     resets its per-phase bookkeeping, forwards PULSE to its sons and
//     sends FRAG to every non-tree neighbor.
//  2. Query: FRAG is answered with RFRAG(fragment id). A reply with a
//     foreign fragment id makes the link a candidate outgoing edge.
//  3. Report: once every FRAG is answered and every son has reported,
//     the best candidate (MCOE) travels to the father.
//  4. Decide: the root either finishes (no candidate: the tree spans the
//     graph) or broadcasts ACK with the chosen edge.
//  5. Reorient: on ACK every node adopts the chosen edge's inner endpoint
//     as fragment id; nodes on the path to the edge reverse father and son
//     so that the inner endpoint becomes root, which sends MERGE across.
//  6. Merge: a node still relaying the NEW that founded its phase takes
//     an equal-phase invitation as a son at once and answers NEW. Elsewhere
//     invitations of equal phase wait until the receiver has decided its own
//     edge, then attach as sons; invitations from a lower phase are absorbed
//     at once and answered with NEW, marked late when the receiver's
//     fragment already runs the phase.
//  7. Arbitrate: when two roots chose the same edge, the smaller fragment id
//     wins, moves to the next phase and announces NEW to its sons.
//  8. NEW travels down, every node adopts father, fragment id and phase.
//  9. ECHO travels back up; the root then pulses the next phase. A son
//     absorbed late is synchronised with a PULSE when it echoes.
//  10. Finish: DISP travels down, every father emits its tree edges, RDISP
//     travels back up and the global root raises termination exactly once.
//
// Causal filter
//
//	Only FRAG is phase-gated: a FRAG stamped with a phase above the local
//	one waits in the node's buffer, because the local fragment id may still
//	be stale. Every other flag is acted on at once. Buffered envelopes are
//	retried whenever the phase moves, within the same step and in later
//	rounds; they are never dropped.
//
// Errors
//
//	Every inconsistency is fatal and returned from Step as *ViolationError,
//	which unwraps to ErrProtocolViolation, ErrOrderingViolation or
//	ErrTopologyViolation. A node that failed keeps returning the same error.
package node
