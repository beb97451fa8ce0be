// Package grammar implements the context-free grammar transforms shared by
// the CFPQ engines: CFG -> Weak Chomsky Normal Form, CFG -> ECFG (one regex
// right-hand side per variable), and ECFG -> RSM (one minimised DFA per
// variable, merged into a single variable-tagged automaton.LabelledAutomaton).
//
// Parsing of arbitrary regular-expression syntax is out of scope; regex
// bodies are built with the combinators in regex.go instead of a text
// grammar. The one text format this package does own is the line-oriented
// "LHS -> BODY" production format, read by ParseCFG and ParseECFG.
package grammar
