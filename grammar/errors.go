package grammar

import "errors"

var (
	// ErrGrammarSyntax is returned by ParseCFG/ParseECFG for malformed
	// production text: missing "->", an empty or non-variable LHS, or an
	// ECFG with a duplicate LHS. Body tokens are not rejected: each one is
	// classified as a variable or terminal by its first letter.
	ErrGrammarSyntax = errors.New("grammar: malformed production")

	// ErrUnknownVariable names the case of a production body that references
	// a variable the grammar never defines a head for. No function in this
	// package returns it; ParseCFG and ParseECFG accept such bodies.
	ErrUnknownVariable = errors.New("grammar: body references undefined variable")

	// ErrEmptyGrammar is returned when a CFG/ECFG has no productions at all.
	ErrEmptyGrammar = errors.New("grammar: no productions")
)
