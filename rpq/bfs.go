package rpq

import (
	"context"
	"sort"

	"github.com/katalvlaran/formalpath/automaton"
	"github.com/katalvlaran/formalpath/boolmatrix"
	"github.com/projectdiscovery/gologger"
)

// Result is the "set<v> | set<(v,v)>" union return of BFS: exactly one
// of Vertices/Pairs is populated, selected by the
// perStart flag BFS was called with.
type Result struct {
	PerStart bool
	Vertices map[automaton.State]struct{}
	Pairs    map[Pair]struct{}
}

// BFS runs the block-diagonal multi-source front-matrix sweep. In
// whole-set mode the front has one block of Nr rows and the result
// is the set of reachable final graph vertices with no start-vertex
// attribution. In per-start-vertex mode the front stacks one Nr-row block
// per graph start vertex and the result is (start, final) pairs.
//
// Cancellation is cooperative: ctx is checked once per sweep (a full pass
// over every shared symbol), matching this module's convergence-loop
// cancellation contract.
// Complexity: bounded by R*(Nr+Ng) total nnz growth, R = Nr or K*Nr.
func BFS(ctx context.Context, graphAut, regexAut *automaton.LabelledAutomaton, perStart bool) (*Result, error) {
	nr := regexAut.Size()
	ng := graphAut.Size()

	var blockStarts []int
	if perStart {
		for idx := range graphAut.Start {
			blockStarts = append(blockStarts, idx)
		}
		sort.Ints(blockStarts)
	} else {
		blockStarts = []int{-1} // single block, not attributed to one start
	}
	k := len(blockStarts)

	front := initFront(nr, ng, k, blockStarts, graphAut, regexAut, perStart)

	shared := sharedSymbols(graphAut, regexAut)
	for round := 1; ; round++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		before := front.Nnz()
		for _, s := range shared {
			d := regexAut.Matrix(s).BlockDiag(graphAut.Matrix(s))
			next, err := front.MatMul(d)
			if err != nil {
				return nil, err
			}
			next = normalizeFront(next, nr, ng)
			merged, err := front.Or(next)
			if err != nil {
				return nil, err
			}
			front = merged
		}
		gologger.Verbose().Msgf("bfs-rpq: round %d nnz=%d", round, front.Nnz())
		if front.Nnz() == before {
			break
		}
	}

	return extractResult(front, nr, graphAut, regexAut, blockStarts, perStart), nil
}

func sharedSymbols(a, b *automaton.LabelledAutomaton) []automaton.Symbol {
	bSet := make(map[automaton.Symbol]struct{})
	for _, s := range b.Symbols() {
		bSet[s] = struct{}{}
	}
	var out []automaton.Symbol
	for _, s := range a.Symbols() {
		if _, ok := bSet[s]; ok {
			out = append(out, s)
		}
	}

	return out
}

// initFront builds the R×(Nr+Ng) seed front: left Nr columns are the
// per-block regex-state identity, right Ng columns mark the start-vertex
// mask for rows whose regex state is a regex start state.
func initFront(nr, ng, k int, blockStarts []int, graphAut, regexAut *automaton.LabelledAutomaton, perStart bool) *boolmatrix.Matrix {
	b := boolmatrix.NewBuilder(k*nr, nr+ng)
	for blk := 0; blk < k; blk++ {
		for i := 0; i < nr; i++ {
			row := blk*nr + i
			b.Set(row, i)
			if !regexAut.IsStart(i) {
				continue
			}
			if perStart {
				b.Set(row, nr+blockStarts[blk])
			} else {
				for gs := range graphAut.Start {
					b.Set(row, nr+gs)
				}
			}
		}
	}

	return b.Freeze()
}

// normalizeFront re-routes rows by their new regex-state column and drops
// rows that carry no live regex state, a two-step normalisation.
// blockIndex(row) = row/nr is uniform across both modes:
// whole-set has exactly one block of nr rows, so blockIndex is always 0 and
// re-routing simply relabels the row by its new regex state j.
func normalizeFront(raw *boolmatrix.Matrix, nr, ng int) *boolmatrix.Matrix {
	b := boolmatrix.NewBuilder(raw.Rows(), nr+ng)
	for row := 0; row < raw.Rows(); row++ {
		blockIndex := row / nr
		var regexCols, graphCols []int
		for j := 0; j < nr; j++ {
			if ok, _ := raw.Get(row, j); ok {
				regexCols = append(regexCols, j)
			}
		}
		if len(regexCols) == 0 {
			continue // rows whose left part is all-zero are dropped
		}
		for g := 0; g < ng; g++ {
			if ok, _ := raw.Get(row, nr+g); ok {
				graphCols = append(graphCols, g)
			}
		}
		for _, j := range regexCols {
			newRow := blockIndex*nr + j
			b.Set(newRow, j)
			for _, g := range graphCols {
				b.Set(newRow, nr+g)
			}
		}
	}

	return b.Freeze()
}

func extractResult(front *boolmatrix.Matrix, nr int, graphAut, regexAut *automaton.LabelledAutomaton, blockStarts []int, perStart bool) *Result {
	res := &Result{PerStart: perStart}
	if perStart {
		res.Pairs = make(map[Pair]struct{})
	} else {
		res.Vertices = make(map[automaton.State]struct{})
	}

	for _, c := range front.NonZero() {
		if c.Col < nr {
			continue
		}
		ri := c.Row % nr
		gi := c.Col - nr
		if !regexAut.IsFinal(ri) || !graphAut.IsFinal(gi) {
			continue
		}
		final := graphAut.StateOf(gi)
		if perStart {
			block := c.Row / nr
			start := graphAut.StateOf(blockStarts[block])
			res.Pairs[Pair{From: start, To: final}] = struct{}{}
		} else {
			res.Vertices[final] = struct{}{}
		}
	}

	return res
}
