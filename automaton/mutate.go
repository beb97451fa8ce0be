package automaton

import "github.com/katalvlaran/formalpath/boolmatrix"

// WithMatrix returns a new LabelledAutomaton identical to a except that
// symbol s maps to m. a itself is left untouched: engines composing automata
// across rounds must never mutate their inputs;
// Start, Final, and the index bijection are shared by reference since they
// never change shape under this operation.
// Complexity: O(|a.Matrices|).
func (a *LabelledAutomaton) WithMatrix(s Symbol, m *boolmatrix.Matrix) *LabelledAutomaton {
	matrices := make(map[Symbol]*boolmatrix.Matrix, len(a.Matrices)+1)
	for k, v := range a.Matrices {
		matrices[k] = v
	}
	matrices[s] = m

	return &LabelledAutomaton{
		N: a.N, Matrices: matrices, Start: a.Start, Final: a.Final,
		indexOf: a.indexOf, stateOf: a.stateOf,
	}
}
