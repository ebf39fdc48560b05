// Package message defines the wire vocabulary exchanged between neighbors:
// the ten protocol flags, one payload type per flag, and the Envelope that
// stamps a payload with its sender, destination, the sender's phase at send
// time and a per-link sequence number.
//
// Payload is a closed (sealed) interface: only the types declared in this
// package implement it, so a type switch over the ten cases is exhaustive.
//
// Envelopes are immutable once handed to the transport. The receiving node
// uses Phase for its causal filter and Seq to detect replays.
package message
