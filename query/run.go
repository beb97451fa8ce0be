package query

import (
	"github.com/katalvlaran/formalpath/automaton"
	"github.com/katalvlaran/formalpath/cfpq"
	"github.com/katalvlaran/formalpath/core"
	"github.com/katalvlaran/formalpath/grammar"
	"github.com/katalvlaran/formalpath/rpq"
)

// RPQResult mirrors rpq.Result in the façade's string-vertex-ID space: the
// BFSRPQ whole-set mode answers with a bare vertex set, every other RPQ
// engine (and BFSRPQ's per-start mode) answers with (start, final) pairs.
type RPQResult struct {
	PerStart bool
	Vertices map[string]struct{}
	Pairs    map[Pair]struct{}
}

// RunRPQ answers a regular-path query: regex is an already-built query
// automaton (see package grammar for building one from a CFG variable via
// ToECFG/ToRSM, or automaton.FromSpec directly for a hand-built regex DFA).
// Complexity: see rpq.KronTC / rpq.BFS.
func RunRPQ(g *core.Graph, regex *automaton.LabelledAutomaton, engine Engine, opts ...Option) (*RPQResult, error) {
	c := newConfig()
	for _, o := range opts {
		o(c)
	}

	ga, err := automaton.FromGraph(g, startsOrNil(c), finalsOrNil(c))
	if err != nil {
		return nil, err
	}

	switch engine {
	case KronTC:
		pairs, err := rpq.KronTC(ga, regex)
		if err != nil {
			return nil, err
		}

		return &RPQResult{PerStart: true, Pairs: convertPairs(pairs)}, nil
	case BFSRPQ:
		res, err := rpq.BFS(c.ctx, ga, regex, c.perStart)
		if err != nil {
			return nil, err
		}
		if res.PerStart {
			return &RPQResult{PerStart: true, Pairs: convertPairs(res.Pairs)}, nil
		}

		return &RPQResult{PerStart: false, Vertices: convertVertices(res.Vertices)}, nil
	default:
		panic("query: engine is not an RPQ engine")
	}
}

// RunCFPQ answers a context-free path query: cfg must be the
// original (non-WCNF) grammar for TensorCFPQ, or may be pre-converted for
// Hellings/MatrixCFPQ (ToWCNF is idempotent enough on an already-normalised
// grammar that callers needn't care either way — this function normalises
// internally for the triple-producing engines).
// Complexity: see cfpq.Hellings / cfpq.Matrix / cfpq.Tensor.
func RunCFPQ(g *core.Graph, cfg *grammar.CFG, engine Engine, opts ...Option) (map[Pair]struct{}, error) {
	c := newConfig()
	for _, o := range opts {
		o(c)
	}

	ga, err := automaton.FromGraph(g, nil, nil)
	if err != nil {
		return nil, err
	}

	var triples []cfpq.Triple
	switch engine {
	case Hellings:
		triples, err = cfpq.Hellings(c.ctx, ga, cfg.ToWCNF())
	case MatrixCFPQ:
		triples, err = cfpq.Matrix(c.ctx, ga, cfg.ToWCNF())
	case TensorCFPQ:
		triples, err = cfpq.Tensor(c.ctx, ga, cfg)
	default:
		panic("query: engine is not a CFPQ engine")
	}
	if err != nil {
		return nil, err
	}

	out := make(map[Pair]struct{})
	for _, t := range triples {
		if t.X != c.startVar {
			continue
		}
		u, v := t.U.(string), t.V.(string)
		if c.haveStart && !c.starts[u] {
			continue
		}
		if c.haveFinal && !c.finals[v] {
			continue
		}
		out[Pair{From: u, To: v}] = struct{}{}
	}

	return out, nil
}

func startsOrNil(c *config) map[string]bool {
	if !c.haveStart {
		return nil
	}

	return c.starts
}

func finalsOrNil(c *config) map[string]bool {
	if !c.haveFinal {
		return nil
	}

	return c.finals
}

func convertPairs(pairs map[rpq.Pair]struct{}) map[Pair]struct{} {
	out := make(map[Pair]struct{}, len(pairs))
	for p := range pairs {
		out[Pair{From: p.From.(string), To: p.To.(string)}] = struct{}{}
	}

	return out
}

func convertVertices(vs map[automaton.State]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(vs))
	for v := range vs {
		out[v.(string)] = struct{}{}
	}

	return out
}
