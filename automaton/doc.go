// Package automaton implements LabelledAutomaton: one boolmatrix.Matrix per
// alphabet symbol over a shared dense state-index space, plus start/final
// sets and an index<->original-state bijection.
//
// A LabelledAutomaton can come from a core.Graph (FromGraph: states are
// vertex IDs, symbols are edge labels) or from an explicit automaton
// description built by a caller (FromSpec: states/transitions/start/final
// supplied directly, since parsing regex syntax into such a description is
// out of scope for this package — see package grammar for a minimal
// combinator-built regex compiler that produces Specs via Thompson
// construction).
//
// Construction from an NFA-like source enumerates states once, assigns dense
// indices in iteration order, and never revisits that assignment: indices
// are stable for the lifetime of the automaton (see core/methods_vertices.go
// AI-HINT on Vertices() being a stable, sorted enumeration surface — the
// same discipline is followed here for reproducible engine output).
package automaton
