// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w (see impl_cycle.go, impl_path.go).
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (e.g., n) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that BuildGraph or a labelling helper could
// not proceed because of a programmer error (nil constructor, nil graph).
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix call site */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrEmptyAlphabet indicates LabelByAlphabet was called with no symbols to
// cycle through.
// Usage: if errors.Is(err, ErrEmptyAlphabet) { /* supply a non-empty alphabet */ }.
var ErrEmptyAlphabet = errors.New("builder: empty label alphabet")
