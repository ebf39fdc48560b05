// Package ghs computes minimum spanning trees the distributed way: every
// node knows only its own identifier and its incident weighted links, and
// the tree emerges from messages exchanged between neighbors.
//
// 🚀 What is in the box?
//
//	A round-based simulator of the Gallager–Humblet–Spira fragment-merging
//	protocol, plus the tooling around it:
//		• Per-node state machines that never share state
//		• A lock-step scheduler with optional parallel stepping and
//		  seeded delivery shuffling
//		• Verification against Kruskal and Prim
//		• Topology generators, TOML/YAML topology files, DOT output
//		• zerolog logging and Prometheus metrics
//
// Packages:
//
//	core/          — NodeID, Edge, EdgeOrder and the static topology Graph
//	message/       — the ten protocol flags and the phase-stamped Envelope
//	node/          — the per-node protocol state machine (the heart)
//	sim/           — the round scheduler, Result and Verify
//	builder/       — deterministic topology generators
//	bfs/           — traversal and connectivity checks
//	prim_kruskal/  — centralized reference MST
//	render/        — Graphviz DOT of a tree
//	config/        — run configuration (viper) and topology files
//	logging/       — zerolog setup
//	telemetry/     — Prometheus collectors
//	cmd/ghsmst/    — the command line tool
//
// Quick ASCII example:
//
//	    1───2          weights: 1-2 (1), 2-3 (2), 3-4 (3), 1-4 (4), 1-3 (5)
//	    │ ╲ │
//	    4───3          tree:    1-2, 2-3, 3-4 (weight 6)
//
//	go run github.com/katalvlaran/ghs/cmd/ghsmst run net.toml
package ghs
