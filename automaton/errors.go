// SPDX-License-Identifier: MIT
package automaton

import "errors"

var (
	// ErrUnknownState is returned when a caller-supplied start/final state
	// (or a transition endpoint in a Spec) is not present among the
	// automaton's states.
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrEmptySpec is returned when building a LabelledAutomaton from a Spec
	// or graph with zero states.
	ErrEmptySpec = errors.New("automaton: automaton has no states")
)
