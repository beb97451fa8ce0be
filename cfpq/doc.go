// Package cfpq implements the three context-free path querying engines:
// Hellings' worklist algorithm, a per-variable sparse-matrix fixed point,
// and a tensor-product engine driven by a recursive state machine. All
// three are required to agree on the set of (u, X, v)
// triples they produce for the same (graph, grammar) pair.
package cfpq
