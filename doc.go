// Package formalpath implements context-free and regular path querying
// (CFPQ/RPQ) over edge-labelled directed multigraphs: given a graph with
// labelled edges and a query (a regular expression or a context-free
// grammar), enumerate the vertex pairs connected by a path whose label
// sequence belongs to the query language.
//
// The module is organized leaves-first:
//
//	core/      — labelled directed multigraph (Graph, Vertex, Edge), thread-safe
//	boolmatrix/ — sparse boolean matrix substrate (builder → frozen CSR)
//	automaton/ — LabelledAutomaton: per-symbol matrices, intersection, closure
//	grammar/   — CFG/WCNF/ECFG/RSM transforms and the regex/grammar combinators
//	rpq/       — Kronecker-transitive-closure and multi-source BFS RPQ engines
//	cfpq/      — Hellings, matrix, and tensor CFPQ engines
//	query/     — engine-selecting façade over rpq/cfpq
//	dot/       — minimal Dot file reader for graph interchange
//	builder/   — deterministic graph topology factories for fixtures and tests
//
// See query.RunRPQ and query.RunCFPQ for the primary entry points.
package formalpath
