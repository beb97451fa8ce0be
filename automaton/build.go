package automaton

import (
	"github.com/katalvlaran/formalpath/boolmatrix"
	"github.com/katalvlaran/formalpath/core"
)

// FromSpec builds a LabelledAutomaton from an explicit Spec: states are
// enumerated in Spec.States order (the caller controls index stability by
// controlling that order), transitions are bucketed one boolmatrix.Builder
// per symbol and frozen.
// Complexity: O(|States| + |Transitions|).
func FromSpec(spec Spec) (*LabelledAutomaton, error) {
	n := len(spec.States)
	if n == 0 {
		return nil, ErrEmptySpec
	}

	indexOf := make(map[State]int, n)
	stateOf := make([]State, n)
	for i, s := range spec.States {
		indexOf[s] = i
		stateOf[i] = s
	}

	builders := make(map[Symbol]*boolmatrix.Builder)
	for _, t := range spec.Transitions {
		from, ok := indexOf[t.From]
		if !ok {
			return nil, ErrUnknownState
		}
		to, ok := indexOf[t.To]
		if !ok {
			return nil, ErrUnknownState
		}
		b, ok := builders[t.Symbol]
		if !ok {
			b = boolmatrix.NewBuilder(n, n)
			builders[t.Symbol] = b
		}
		b.Set(from, to)
	}

	matrices := make(map[Symbol]*boolmatrix.Matrix, len(builders))
	for sym, b := range builders {
		matrices[sym] = b.Freeze()
	}

	start := make(map[int]struct{}, len(spec.Start))
	for _, s := range spec.Start {
		idx, ok := indexOf[s]
		if !ok {
			return nil, ErrUnknownState
		}
		start[idx] = struct{}{}
	}
	final := make(map[int]struct{}, len(spec.Final))
	for _, s := range spec.Final {
		idx, ok := indexOf[s]
		if !ok {
			return nil, ErrUnknownState
		}
		final[idx] = struct{}{}
	}

	return &LabelledAutomaton{
		N:        n,
		Matrices: matrices,
		Start:    start,
		Final:    final,
		indexOf:  indexOf,
		stateOf:  stateOf,
	}, nil
}

// FromGraph builds a LabelledAutomaton whose states are g's vertex IDs and
// whose symbols are g's edge labels: the concrete construction-from-a-graph
// path for this domain.
//
// States are enumerated via g.Vertices(), which the core package guarantees
// returns IDs sorted lexicographically ascending — so dense-index assignment
// (and therefore every downstream engine's iteration order before the final
// set conversion) is reproducible across runs: Edges()/Vertices() are a
// stable enumeration surface.
//
// starts/finals select which vertex IDs are automaton start/final states; a
// nil map means "every vertex", matching query.RunRPQ's default.
// Complexity: O(V + E).
func FromGraph(g *core.Graph, starts, finals map[string]bool) (*LabelledAutomaton, error) {
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, ErrEmptySpec
	}

	indexOf := make(map[State]int, n)
	stateOf := make([]State, n)
	for i, v := range vertices {
		indexOf[v] = i
		stateOf[i] = v
	}

	builders := make(map[Symbol]*boolmatrix.Builder)
	for _, e := range g.Edges() {
		if e.Label == "" {
			continue
		}
		from := indexOf[e.From]
		to := indexOf[e.To]
		sym := Symbol(e.Label)
		b, ok := builders[sym]
		if !ok {
			b = boolmatrix.NewBuilder(n, n)
			builders[sym] = b
		}
		b.Set(from, to)
		if !e.Directed && e.From != e.To {
			b.Set(to, from)
		}
	}

	matrices := make(map[Symbol]*boolmatrix.Matrix, len(builders))
	for sym, b := range builders {
		matrices[sym] = b.Freeze()
	}

	start := make(map[int]struct{}, n)
	final := make(map[int]struct{}, n)
	for _, v := range vertices {
		idx := indexOf[v]
		if starts == nil || starts[v] {
			start[idx] = struct{}{}
		}
		if finals == nil || finals[v] {
			final[idx] = struct{}{}
		}
	}

	return &LabelledAutomaton{
		N:        n,
		Matrices: matrices,
		Start:    start,
		Final:    final,
		indexOf:  indexOf,
		stateOf:  stateOf,
	}, nil
}

// ToSpec converts a LabelledAutomaton back to an explicit Spec: the NFA
// round-trip property callers rely on is that from(fa).to_automaton()
// recognises the same language as fa.
// Complexity: O(N + total nnz).
func (a *LabelledAutomaton) ToSpec() Spec {
	spec := Spec{States: make([]State, a.N)}
	copy(spec.States, a.stateOf)

	for idx := range a.Start {
		spec.Start = append(spec.Start, a.stateOf[idx])
	}
	for idx := range a.Final {
		spec.Final = append(spec.Final, a.stateOf[idx])
	}

	for sym, m := range a.Matrices {
		for _, c := range m.NonZero() {
			spec.Transitions = append(spec.Transitions, Transition{
				From: a.stateOf[c.Row], To: a.stateOf[c.Col], Symbol: sym,
			})
		}
	}

	return spec
}
