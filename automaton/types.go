package automaton

import (
	"sort"

	"github.com/katalvlaran/formalpath/boolmatrix"
)

// State is an opaque, comparable token identifying a state in the source
// automaton (a graph vertex ID, a regex-compiler state number, ...). Two
// states are equal iff Go's == treats their values as equal.
type State any

// Symbol is an opaque, comparable alphabet token (typically a short string,
// e.g. an edge label or a grammar terminal spelling).
type Symbol string

// Transition is one (from, symbol, to) edge of a Spec.
type Transition struct {
	From, To State
	Symbol   Symbol
}

// Spec is a caller-built description of a finite automaton: its full state
// set, start/final subsets, and transitions. Building a Spec is the one
// NFA-like construction surface this package exposes; it never parses regex
// or grammar text into a Spec itself (see package grammar for the
// combinator-based regex-to-Spec compiler).
type Spec struct {
	States      []State
	Start       []State
	Final       []State
	Transitions []Transition
}

// LabelledAutomaton is the dense-indexed, per-symbol-boolmatrix automaton
// shared by every RPQ/CFPQ engine in this module.
//
// Invariants:
//   - every Matrices[s] is N×N;
//   - Start, Final are subsets of [0,N) in index space;
//   - indexOf/stateOf form a bijection between State and [0,N).
type LabelledAutomaton struct {
	N        int
	Matrices map[Symbol]*boolmatrix.Matrix
	Start    map[int]struct{}
	Final    map[int]struct{}

	indexOf map[State]int
	stateOf []State
}

// Size returns the automaton's state count. Complexity: O(1).
func (a *LabelledAutomaton) Size() int { return a.N }

// IndexOf returns the dense index for a given original state, and whether it
// was found.
// Complexity: O(1).
func (a *LabelledAutomaton) IndexOf(s State) (int, bool) {
	i, ok := a.indexOf[s]

	return i, ok
}

// StateOf returns the original state for a dense index. Panics (programmer
// error) if idx is out of [0,N) — callers only ever pass back indices this
// automaton itself produced.
// Complexity: O(1).
func (a *LabelledAutomaton) StateOf(idx int) State { return a.stateOf[idx] }

// IsStart/IsFinal report start/final membership by dense index.
// Complexity: O(1).
func (a *LabelledAutomaton) IsStart(idx int) bool { _, ok := a.Start[idx]; return ok }
func (a *LabelledAutomaton) IsFinal(idx int) bool { _, ok := a.Final[idx]; return ok }

// Symbols returns the automaton's alphabet (map keys of Matrices), sorted for
// deterministic iteration by callers that need it (engines internally only
// ever range the map — the result is a set with no ordering guarantee, but
// tests benefit from a stable listing).
// Complexity: O(|symbols| log |symbols|).
func (a *LabelledAutomaton) Symbols() []Symbol {
	out := make([]Symbol, 0, len(a.Matrices))
	for s := range a.Matrices {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Matrix returns the N×N boolean adjacency matrix for symbol s, or the N×N
// zero matrix if s is absent from the alphabet: an unknown symbol is never
// an error, it just contributes nothing to the product.
// Complexity: O(1) amortized, O(N) on the miss path to build the zero matrix.
func (a *LabelledAutomaton) Matrix(s Symbol) *boolmatrix.Matrix {
	if m, ok := a.Matrices[s]; ok {
		return m
	}
	z, _ := boolmatrix.NewZero(a.N, a.N)

	return z
}
