// Package builder provides reusable "functional-options"-style building blocks
// for the topologies the distributed MST run is exercised on. It centralizes
// node-id schemes, weight distributions and validation so that tests, the
// CLI generator and benchmarks all build graphs the same way.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function, distinctness.
//   - Node-ID schemes (IDFn implementations):
//     – DefaultIDFn:       idx+1 (1,2,3,…); zero is never produced.
//     – OffsetIDFn:        base+idx.
//     – StrideIDFn:        base+idx*step, for sparse identifier spaces.
//     – PermutedIDFn:      a seeded shuffle of 1..n, so id order and
//     topology order disagree.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, NormalWeightFn,
//     ExponentialWeightFn, From1To100WeightFn, SequentialWeightFn.
//   - WithDistinctWeights: nudge repeated weights upwards until every edge of
//     the graph has its own weight (the classical GHS precondition; the
//     protocol itself is also correct with ties thanks to core.Compare).
//   - Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse,
//     RandomConnected and FromEdges.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Constructors validate their parameters and return sentinel errors
//     wrapped with the constructor name; they never panic.
//   - Determinism: same options, seed and constructor order ⇒ identical graph.
package builder
