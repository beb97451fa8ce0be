package dot

import "errors"

// ErrMalformedEdge is returned when a non-blank, non-brace, non-comment line
// inside a digraph body is neither an edge statement nor a bare node
// declaration this reader understands.
var ErrMalformedEdge = errors.New("dot: malformed edge statement")
