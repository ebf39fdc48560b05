// Package sim drives a network of protocol nodes in lock-step rounds.
//
// Run creates one node.Node per graph vertex, then repeatedly
//
//  1. steps every node once with the envelopes delivered to it in the
//     previous round (sequentially or on a bounded worker pool, with a
//     barrier between rounds),
//  2. routes the produced envelopes into per-destination inboxes, keeping
//     FIFO order on every directed link (a seeded shuffle may interleave
//     different senders),
//  3. records events: tree edges, merges, deferred FRAGs, termination.
//
// The run ends with the single termination event. A round without traffic
// before that, a node violation, the round limit or context cancellation
// stop it with an error.
//
// Verify checks a Result against the Kruskal reference and the shape of the
// father relation.
package sim
