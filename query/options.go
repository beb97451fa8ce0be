package query

import "context"

// Pair is a result (start, final) vertex pair, in the original graph's
// string vertex-ID space.
type Pair struct {
	From, To string
}

// Engine selects which reachability algorithm answers the query.
type Engine int

const (
	// KronTC and BFSRPQ answer a regex (RPQ) query.
	KronTC Engine = iota
	BFSRPQ
	// Hellings, MatrixCFPQ, and TensorCFPQ answer a CFG (CFPQ) query.
	Hellings
	MatrixCFPQ
	TensorCFPQ
)

type config struct {
	starts    map[string]bool
	finals    map[string]bool
	startVar  string
	perStart  bool
	ctx       context.Context
	haveStart bool
	haveFinal bool
}

func newConfig() *config {
	return &config{startVar: "S", perStart: true, ctx: context.Background()}
}

// Option configures a Run call.
type Option func(*config)

// WithStartVertices restricts the query to the given start vertices;
// omitting this option means "every vertex".
func WithStartVertices(ids ...string) Option {
	return func(c *config) {
		c.starts = toSet(ids)
		c.haveStart = true
	}
}

// WithFinalVertices restricts the query to the given final vertices;
// omitting this option means "every vertex".
func WithFinalVertices(ids ...string) Option {
	return func(c *config) {
		c.finals = toSet(ids)
		c.haveFinal = true
	}
}

// WithStartVariable selects the CFG variable whose derivations are
// projected to vertex pairs (default "S"). Only meaningful for CFPQ
// engines.
func WithStartVariable(v string) Option {
	return func(c *config) { c.startVar = v }
}

// WithPerStart selects BFSRPQ's per-start-vertex mode (the default) versus
// its whole-set mode. Only meaningful for the BFSRPQ engine.
func WithPerStart(b bool) Option {
	return func(c *config) { c.perStart = b }
}

// WithContext threads a cancellation context into the chosen engine's
// convergence loop. Default is context.Background().
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set
}
