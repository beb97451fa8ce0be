package cfpq

import (
	"context"

	"github.com/katalvlaran/formalpath/automaton"
	"github.com/katalvlaran/formalpath/grammar"
	"github.com/projectdiscovery/gologger"
)

// hellingsLogStride bounds how often the worklist size is logged at Verbose
// level; logging every pop would drown the real progress signal in noise.
const hellingsLogStride = 256

// Hellings runs the worklist CFPQ algorithm. wcnf must
// already be in Weak Chomsky Normal Form (grammar.CFG.ToWCNF). The triple
// store is a single flat map checked on every comparison; Hellings
// deliberately never prunes candidates by only probing "nearby" triples —
// every stored triple is compared against every popped one: the global
// store is authoritative.
// Complexity: O(|V|^3 * |grammar|) worst case.
func Hellings(ctx context.Context, ga *automaton.LabelledAutomaton, wcnf *grammar.CFG) ([]Triple, error) {
	binaryByBody := make(map[[2]string][]string)
	for _, p := range wcnf.Productions {
		if len(p.Body) == 2 {
			key := [2]string{p.Body[0].Name, p.Body[1].Name}
			binaryByBody[key] = append(binaryByBody[key], p.Head)
		}
	}

	store := make(map[Triple]struct{})
	var worklist []Triple
	add := func(t Triple) {
		if _, ok := store[t]; ok {
			return
		}
		store[t] = struct{}{}
		worklist = append(worklist, t)
	}

	for _, p := range wcnf.Productions {
		switch {
		case len(p.Body) == 0:
			for i := 0; i < ga.Size(); i++ {
				s := ga.StateOf(i)
				add(Triple{U: s, X: p.Head, V: s})
			}
		case len(p.Body) == 1 && p.Body[0].IsTerminal():
			sym := automaton.Symbol(p.Body[0].Name)
			for _, c := range ga.Matrix(sym).NonZero() {
				add(Triple{U: ga.StateOf(c.Row), X: p.Head, V: ga.StateOf(c.Col)})
			}
		}
	}

	for pops := 0; len(worklist) > 0; pops++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if pops%hellingsLogStride == 0 {
			gologger.Verbose().Msgf("hellings: pop %d, store=%d, worklist=%d", pops, len(store), len(worklist))
		}

		t1 := worklist[0]
		worklist = worklist[1:]

		for t2 := range store {
			if t2.V == t1.U {
				for _, a := range binaryByBody[[2]string{t2.X, t1.X}] {
					add(Triple{U: t2.U, X: a, V: t1.V})
				}
			}
			if t1.V == t2.U {
				for _, a := range binaryByBody[[2]string{t1.X, t2.X}] {
					add(Triple{U: t1.U, X: a, V: t2.V})
				}
			}
		}
	}

	out := make([]Triple, 0, len(store))
	for t := range store {
		out = append(out, t)
	}
	gologger.Verbose().Msgf("hellings: converged, %d triples", len(out))

	return out, nil
}
