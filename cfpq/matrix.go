package cfpq

import (
	"context"
	"sync"

	"github.com/katalvlaran/formalpath/automaton"
	"github.com/katalvlaran/formalpath/boolmatrix"
	"github.com/katalvlaran/formalpath/grammar"
	"github.com/projectdiscovery/gologger"
)

// Option configures Matrix.
type Option func(*matrixConfig)

type matrixConfig struct{ parallel bool }

// WithParallelSweep computes each binary production's matrix product
// concurrently within a sweep, applying every OR-merge only after all
// products have been computed: a barrier separates each sweep from the
// comparison that follows it. Safe because every goroutine only reads the previous
// sweep's matrices map and writes to its own result slot; the map itself is
// never mutated until every goroutine has returned.
func WithParallelSweep() Option {
	return func(c *matrixConfig) { c.parallel = true }
}

// Matrix runs the per-variable boolean-matrix fixed point.
// wcnf must already be in Weak Chomsky Normal Form.
// Complexity: one MatMul per binary production per sweep, until nnz
// stabilises across all matrices combined.
func Matrix(ctx context.Context, ga *automaton.LabelledAutomaton, wcnf *grammar.CFG, opts ...Option) ([]Triple, error) {
	cfg := &matrixConfig{}
	for _, o := range opts {
		o(cfg)
	}

	n := ga.Size()
	matrices := make(map[string]*boolmatrix.Matrix)
	for _, v := range wcnf.Variables() {
		z, err := boolmatrix.NewZero(n, n)
		if err != nil {
			return nil, err
		}
		matrices[v] = z
	}

	var binaries []grammar.Production
	for _, p := range wcnf.Productions {
		switch {
		case len(p.Body) == 0:
			b := boolmatrix.NewBuilder(n, n)
			for i := 0; i < n; i++ {
				b.Set(i, i)
			}
			m, err := matrices[p.Head].Or(b.Freeze())
			if err != nil {
				return nil, err
			}
			matrices[p.Head] = m
		case len(p.Body) == 1 && p.Body[0].IsTerminal():
			sym := automaton.Symbol(p.Body[0].Name)
			m, err := matrices[p.Head].Or(ga.Matrix(sym))
			if err != nil {
				return nil, err
			}
			matrices[p.Head] = m
		case len(p.Body) == 2:
			binaries = append(binaries, p)
		}
	}

	for round := 1; ; round++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		before := totalNnz(matrices)

		products := make([]*boolmatrix.Matrix, len(binaries))
		errs := make([]error, len(binaries))
		if cfg.parallel {
			var wg sync.WaitGroup
			for i, p := range binaries {
				wg.Add(1)
				go func(i int, p grammar.Production) {
					defer wg.Done()
					products[i], errs[i] = matrices[p.Body[0].Name].MatMul(matrices[p.Body[1].Name])
				}(i, p)
			}
			wg.Wait()
		} else {
			for i, p := range binaries {
				products[i], errs[i] = matrices[p.Body[0].Name].MatMul(matrices[p.Body[1].Name])
			}
		}
		for i, p := range binaries {
			if errs[i] != nil {
				return nil, errs[i]
			}
			merged, err := matrices[p.Head].Or(products[i])
			if err != nil {
				return nil, err
			}
			matrices[p.Head] = merged
		}

		after := totalNnz(matrices)
		gologger.Verbose().Msgf("matrix-cfpq: round %d nnz=%d", round, after)
		if after == before {
			break
		}
	}

	var out []Triple
	for v, m := range matrices {
		for _, c := range m.NonZero() {
			out = append(out, Triple{U: ga.StateOf(c.Row), X: v, V: ga.StateOf(c.Col)})
		}
	}

	return out, nil
}

func totalNnz(matrices map[string]*boolmatrix.Matrix) int {
	total := 0
	for _, m := range matrices {
		total += m.Nnz()
	}

	return total
}
