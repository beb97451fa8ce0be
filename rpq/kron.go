package rpq

import "github.com/katalvlaran/formalpath/automaton"

// KronTC answers an RPQ by intersecting the graph automaton with the regex
// automaton and taking a transitive closure: the engine reports
// non-epsilon reachability only — an all-epsilon match at a vertex that is
// both start and final is left as the caller's policy to add.
// Complexity: dominated by the Kronecker product and closure, see
// automaton.LabelledAutomaton.Intersect/TransitiveClosure.
func KronTC(graphAut, regexAut *automaton.LabelledAutomaton) (map[Pair]struct{}, error) {
	inter := graphAut.Intersect(regexAut)
	tc, err := inter.TransitiveClosure()
	if err != nil {
		return nil, err
	}

	nr := regexAut.Size()
	result := make(map[Pair]struct{})
	for _, c := range tc.NonZero() {
		if _, ok := inter.Start[c.Row]; !ok {
			continue
		}
		if _, ok := inter.Final[c.Col]; !ok {
			continue
		}
		gi := c.Row / nr
		gf := c.Col / nr
		result[Pair{From: graphAut.StateOf(gi), To: graphAut.StateOf(gf)}] = struct{}{}
	}

	return result, nil
}
