package automaton

import "github.com/katalvlaran/formalpath/boolmatrix"

// Intersect computes the Kronecker-product intersection of a and b: output
// size N(a)*N(b), index i*N(b)+j for state pair (a_i, b_j). For every symbol
// present in both alphabets, the output matrix is kron(a.Matrices[s],
// b.Matrices[s]); symbols present in only one side contribute nothing.
// Start/final sets compose pointwise (cartesian product).
//
// Complexity: O(|shared symbols| * nnz(a)*nnz(b)) worst case via boolmatrix.Kron.
func (a *LabelledAutomaton) Intersect(b *LabelledAutomaton) *LabelledAutomaton {
	n := a.N * b.N
	matrices := make(map[Symbol]*boolmatrix.Matrix)
	for sym, ma := range a.Matrices {
		mb, ok := b.Matrices[sym]
		if !ok {
			continue
		}
		matrices[sym] = ma.Kron(mb)
	}

	start := make(map[int]struct{})
	for ia := range a.Start {
		for ib := range b.Start {
			start[ia*b.N+ib] = struct{}{}
		}
	}
	final := make(map[int]struct{})
	for ia := range a.Final {
		for ib := range b.Final {
			final[ia*b.N+ib] = struct{}{}
		}
	}

	indexOf := make(map[State]int, n)
	stateOf := make([]State, n)
	for ia := 0; ia < a.N; ia++ {
		for ib := 0; ib < b.N; ib++ {
			idx := ia*b.N + ib
			pair := [2]State{a.stateOf[ia], b.stateOf[ib]}
			stateOf[idx] = pair
			indexOf[pair] = idx
		}
	}

	return &LabelledAutomaton{
		N:        n,
		Matrices: matrices,
		Start:    start,
		Final:    final,
		indexOf:  indexOf,
		stateOf:  stateOf,
	}
}

// TransitiveClosure computes the symbol-agnostic reachability matrix: the
// union of every per-symbol matrix, then the monotone fixed point under
// boolean OR-of-squares. If the automaton has no symbols at all, the N×N
// zero matrix is returned.
// Complexity: O(log N) doublings in practice, bounded by O(N^2) total work.
func (a *LabelledAutomaton) TransitiveClosure() (*boolmatrix.Matrix, error) {
	byName := make(map[string]*boolmatrix.Matrix, len(a.Matrices))
	for s, m := range a.Matrices {
		byName[string(s)] = m
	}

	return boolmatrix.TransitiveClosure(a.N, byName)
}
