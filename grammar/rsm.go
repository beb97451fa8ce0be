package grammar

import (
	"sort"

	"github.com/katalvlaran/formalpath/automaton"
)

// ECFG is an extended CFG: at most one production per variable, with the
// right-hand side expressed as a Regex over (V ∪ T) instead of a flat body
// list.
type ECFG struct {
	Start       string
	Productions map[string]Regex
}

// RSMState tags an RSM state with its owning variable, so that states from
// different variables' component DFAs never collide once merged into one
// automaton.LabelledAutomaton (the Recursive State Machine).
type RSMState struct {
	Var   string
	Inner int
}

// RSM is the recursive state machine derived from an ECFG: one minimised DFA
// per variable, merged into a single variable-tagged automaton. Automaton's
// Start/Final are the union of every component's own start/final states;
// because RSMState disjoints the components, membership in Start or Final
// still identifies which single component (variable) a state belongs to.
type RSM struct {
	Start     string
	Automaton *automaton.LabelledAutomaton
}

// VariableOf returns the variable owning the RSM state at dense index idx.
// Complexity: O(1).
func (r *RSM) VariableOf(idx int) string {
	return r.Automaton.StateOf(idx).(RSMState).Var
}

// ToRSM compiles every variable's regex right-hand side to a minimised DFA
// (Thompson construction, subset construction, Moore minimisation) and
// merges the components into one RSM.
// Complexity: O(sum over variables of their regex-compile cost).
func (e *ECFG) ToRSM() *RSM {
	vars := make([]string, 0, len(e.Productions))
	for v := range e.Productions {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	spec := automaton.Spec{}
	for _, v := range vars {
		d := compileAndMinimize(e.Productions[v])
		for s := 0; s < d.n; s++ {
			state := RSMState{Var: v, Inner: s}
			spec.States = append(spec.States, state)
			if s == d.start {
				spec.Start = append(spec.Start, state)
			}
			if _, ok := d.final[s]; ok {
				spec.Final = append(spec.Final, state)
			}
		}
		for s := 0; s < d.n; s++ {
			from := RSMState{Var: v, Inner: s}
			for sym, to := range d.trans[s] {
				spec.Transitions = append(spec.Transitions, automaton.Transition{
					From: from, To: RSMState{Var: v, Inner: to}, Symbol: sym,
				})
			}
		}
	}

	a, err := automaton.FromSpec(spec)
	if err != nil {
		// Every state referenced by Transitions/Start/Final above was just
		// appended to spec.States in the same loop, so FromSpec can only
		// fail here on a package-internal bookkeeping bug.
		panic("grammar: internal RSM spec is malformed: " + err.Error())
	}

	return &RSM{Start: e.Start, Automaton: a}
}

func compileAndMinimize(r Regex) *dfa {
	b := newNFABuilder()
	start, end := b.newState(), b.newState()
	frag := compileThompson(r, b)
	b.addEdge(start, epsilon, frag.start)
	b.addEdge(frag.end, epsilon, end)

	alphabet := collectAlphabet(r)
	d := determinize(b, start, end, alphabet)

	return d.minimize()
}

func collectAlphabet(r Regex) []automaton.Symbol {
	set := make(map[automaton.Symbol]struct{})
	var walk func(Regex)
	walk = func(r Regex) {
		switch n := r.(type) {
		case litNode:
			set[automaton.Symbol(n.sym.Name)] = struct{}{}
		case concatNode:
			walk(n.a)
			walk(n.b)
		case unionNode:
			walk(n.a)
			walk(n.b)
		case starNode:
			walk(n.a)
		}
	}
	walk(r)

	out := make([]automaton.Symbol, 0, len(set))
	for s := range set {
		out = append(out, s)
	}

	return out
}
