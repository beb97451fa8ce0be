package rpq

import "github.com/katalvlaran/formalpath/automaton"

// Pair is a (start, final) vertex pair reported by an RPQ engine, carried in
// the original graph's state identifiers (not dense indices).
type Pair struct {
	From, To automaton.State
}
