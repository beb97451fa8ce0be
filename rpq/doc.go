// Package rpq implements the two regular-path-query engines that operate
// directly on a pair of automaton.LabelledAutomaton values (a graph
// automaton and a regex automaton): Kron-TC, which intersects and takes a
// transitive closure, and BFS-RPQ, a block-diagonal multi-source front-matrix
// sweep.
package rpq
