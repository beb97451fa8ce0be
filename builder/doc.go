// Package builder provides reusable "functional-options"-style building
// blocks for assembling deterministic core.Graph fixtures, plus the
// alphabet-labelling bridge that turns a plain topology into a labelled
// multigraph the automaton/grammar/rpq/cfpq packages can query.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function.
//   - Topology factories (impl_cycle.go, impl_path.go):
//     – Cycle:  n-vertex ring C_n.
//     – Path:   n-vertex simple path P_n.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Fixture labelling (labels.go):
//     – LabelByAlphabet: cycles edges through a symbol alphabet in ID order.
//
// Guarantees:
//
//   - Idempotent configuration: re-running the same builder on g will not duplicate
//     vertices or edges.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Documented algorithmic complexity (O(n), O(1), ...) per constructor.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
