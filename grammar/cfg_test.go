package grammar_test

import (
	"testing"

	"github.com/katalvlaran/formalpath/grammar"
	"github.com/stretchr/testify/require"
)

// anbn builds S -> a S b | epsilon, the textbook a^n b^n grammar.
func anbn() *grammar.CFG {
	return &grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Sym{grammar.Term("a"), grammar.Var("S"), grammar.Term("b")}},
			{Head: "S", Body: nil},
		},
	}
}

func bodyShape(body []grammar.Sym) (length int, allVariable bool) {
	if len(body) != 2 {
		return len(body), false
	}
	return 2, body[0].IsVariable() && body[1].IsVariable()
}

func TestToWCNFBodyShapes(t *testing.T) {
	g := anbn()
	w := g.ToWCNF()
	require.NotEmpty(t, w.Productions)
	for _, p := range w.Productions {
		length, allVar := bodyShape(p.Body)
		switch length {
		case 0:
		case 1:
			require.True(t, p.Body[0].IsTerminal(), "unary body must be a terminal: %+v", p)
		case 2:
			require.True(t, allVar, "binary body must be two variables: %+v", p)
		default:
			t.Fatalf("body length %d not in {0,1,2}: %+v", length, p)
		}
	}
}

func TestToWCNFKeepsStartSymbol(t *testing.T) {
	w := anbn().ToWCNF()
	require.Equal(t, "S", w.Start)
}

func TestNullable(t *testing.T) {
	g := anbn()
	n := g.Nullable()
	require.True(t, n["S"])
}

func TestNullableNonNullable(t *testing.T) {
	g := &grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Sym{grammar.Term("a")}},
		},
	}
	n := g.Nullable()
	require.False(t, n["S"])
}

func TestEliminateUnitProductions(t *testing.T) {
	g := &grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Sym{grammar.Var("A")}},
			{Head: "A", Body: []grammar.Sym{grammar.Term("x"), grammar.Term("y")}},
		},
	}
	w := g.ToWCNF()
	for _, p := range w.Productions {
		if len(p.Body) == 1 {
			require.True(t, p.Body[0].IsTerminal())
		}
	}
}
