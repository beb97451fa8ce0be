package cfpq

import (
	"context"

	"github.com/katalvlaran/formalpath/automaton"
	"github.com/katalvlaran/formalpath/boolmatrix"
	"github.com/katalvlaran/formalpath/grammar"
	"github.com/projectdiscovery/gologger"
)

// Tensor runs the RSM-intersection CFPQ engine. cfg is the
// original (pre-WCNF) grammar: it is only used to derive an ECFG/RSM and a
// nullable set, never converted to WCNF itself. ga is never mutated;
// grammar-induced edges accumulate on private working copies produced by
// automaton.LabelledAutomaton.WithMatrix.
// Complexity: one intersection + closure per round, until the closure's nnz
// stops growing; bounded by |V|^2 * |variables|.
func Tensor(ctx context.Context, ga *automaton.LabelledAutomaton, cfg *grammar.CFG) ([]Triple, error) {
	rsm := cfg.ToECFG().ToRSM()
	nullable := cfg.Nullable()

	g := ga
	ng := g.Size()
	ident, err := boolmatrix.NewIdentity(ng)
	if err != nil {
		return nil, err
	}
	for v, isNullable := range nullable {
		if !isNullable {
			continue
		}
		sym := automaton.Symbol(v)
		merged, err := g.Matrix(sym).Or(ident)
		if err != nil {
			return nil, err
		}
		g = g.WithMatrix(sym, merged)
	}

	variables := make(map[string]struct{})
	for _, v := range cfg.Variables() {
		variables[v] = struct{}{}
	}

	prevNnz := -1
	for round := 1; ; round++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		inter := rsm.Automaton.Intersect(g)
		tc, err := inter.TransitiveClosure()
		if err != nil {
			return nil, err
		}
		gologger.Verbose().Msgf("tensor-cfpq: round %d closure-nnz=%d", round, tc.Nnz())
		if tc.Nnz() == prevNnz {
			break
		}
		prevNnz = tc.Nnz()

		additions := make(map[automaton.Symbol]*boolmatrix.Builder)
		builderFor := func(sym automaton.Symbol) *boolmatrix.Builder {
			if b, ok := additions[sym]; ok {
				return b
			}
			b := boolmatrix.NewBuilder(ng, ng)
			for _, c := range g.Matrix(sym).NonZero() {
				b.Set(c.Row, c.Col)
			}
			additions[sym] = b

			return b
		}

		for _, c := range tc.NonZero() {
			rsmSrc, gSrc := c.Row/ng, c.Row%ng
			rsmDst, gDst := c.Col/ng, c.Col%ng
			if !rsm.Automaton.IsStart(rsmSrc) || !rsm.Automaton.IsFinal(rsmDst) {
				continue
			}
			tag := rsm.Automaton.StateOf(rsmSrc).(grammar.RSMState)
			builderFor(automaton.Symbol(tag.Var)).Set(gSrc, gDst)
		}

		for sym, b := range additions {
			g = g.WithMatrix(sym, b.Freeze())
		}
	}

	var out []Triple
	for sym, m := range g.Matrices {
		if _, ok := variables[string(sym)]; !ok {
			continue
		}
		for _, c := range m.NonZero() {
			out = append(out, Triple{U: g.StateOf(c.Row), X: string(sym), V: g.StateOf(c.Col)})
		}
	}

	return out, nil
}
