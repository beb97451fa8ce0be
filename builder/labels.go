// labels.go - deterministic alphabet labelling for CFPQ/RPQ fixture graphs.
//
// The topology factories in this package (Cycle, Path) build plain or
// weighted core.Graph values; neither knows about the automaton/grammar
// symbol alphabet. LabelByAlphabet is the bridge: given a
// graph already built via BuildGraph and a sorted alphabet, it assigns each
// edge a label by cycling through the alphabet in edge-ID order, so fixture
// graphs for rpq/cfpq tests and benchmarks can be generated with the same
// determinism guarantees (seed, option, constructor order) as the rest of
// this package.
package builder

import (
	"fmt"

	"github.com/katalvlaran/formalpath/core"
)

// LabelByAlphabet assigns g.Edges()[i].Label = alphabet[i % len(alphabet)],
// walking edges in their canonical ID-ascending order. It mutates g in
// place and returns ErrEmptyAlphabet if alphabet has no symbols.
//
// Determinism: for a fixed graph (fixed edge ID sequence) and a fixed
// alphabet slice, the resulting labelling is identical on every call.
//
// Complexity: O(E) time, O(1) extra space.
func LabelByAlphabet(g *core.Graph, alphabet []string) error {
	if g == nil {
		return fmt.Errorf("LabelByAlphabet: nil graph: %w", ErrConstructFailed)
	}
	if len(alphabet) == 0 {
		return ErrEmptyAlphabet
	}

	for i, e := range g.Edges() {
		e.Label = alphabet[i%len(alphabet)]
	}

	return nil
}
