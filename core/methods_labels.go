// File: methods_labels.go
// Role: Thin convenience wrapper for building labelled multigraphs consumed by
//       the automaton/grammar/rpq/cfpq packages.
// AI-HINT (file):
//   - AddLabelledEdge is sugar for AddEdge(from, to, 0, WithEdgeLabel(label));
//     it never sets a weight (CFPQ/RPQ is a Non-goal for weighted paths).

package core

// AddLabelledEdge inserts a zero-weight edge from→to carrying the given
// alphabet symbol. The Graph must allow the implied directedness/loop/multi
// configuration the same way a plain AddEdge call would.
//
// Complexity: O(1) amortized, same as AddEdge.
func (g *Graph) AddLabelledEdge(from, to, label string, opts ...EdgeOption) (string, error) {
	allOpts := make([]EdgeOption, 0, len(opts)+1)
	allOpts = append(allOpts, WithEdgeLabel(label))
	allOpts = append(allOpts, opts...)

	return g.AddEdge(from, to, 0, allOpts...)
}

// EdgesByLabel returns all edges carrying the given label, sorted by Edge.ID
// asc (same determinism contract as Edges()).
//
// Complexity: O(E).
func (g *Graph) EdgesByLabel(label string) []*Edge {
	all := g.Edges()
	out := make([]*Edge, 0, len(all))
	for _, e := range all {
		if e.Label == label {
			out = append(out, e)
		}
	}

	return out
}

// Labels returns the distinct set of non-empty edge labels present in the
// graph, i.e. its alphabet.
//
// Complexity: O(E).
func (g *Graph) Labels() map[string]struct{} {
	all := g.Edges()
	out := make(map[string]struct{}, len(all))
	for _, e := range all {
		if e.Label != "" {
			out[e.Label] = struct{}{}
		}
	}

	return out
}
