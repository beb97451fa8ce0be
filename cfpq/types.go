package cfpq

import "github.com/katalvlaran/formalpath/automaton"

// Triple is a single "X derives a path U -> V" fact: U and V are graph
// states (the original vertex identifiers), X is a CFG variable name.
type Triple struct {
	U automaton.State
	X string
	V automaton.State
}
