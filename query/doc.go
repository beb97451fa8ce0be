// Package query is the engine-agnostic façade over the rpq and cfpq
// packages: it builds the graph automaton, dispatches to the
// selected engine, and projects the engine's raw output down to the
// requested (start, final) vertex pairs.
package query
