// Package boolmatrix provides sparse boolean matrices used as the shared
// substrate under LabelledAutomaton (package automaton) and the CFPQ/RPQ
// engines (packages rpq, cfpq).
//
// What & Why:
//
//	A boolean matrix here means exactly that: entries are present or absent,
//	never counted and never summed. Arithmetic-looking products (matmul, kron)
//	use boolean OR in place of addition, so repeated paths between the same
//	pair of states collapse to a single true entry instead of overflowing or
//	silently wrapping. Storage is a row-bucketed column-index representation
//	sized for adjacency-style sparsity (most rows touch a small fraction of
//	columns).
//
// Construction pattern:
//
//	A fresh Matrix is built via a Builder (one unordered column set per row,
//	the boolean analogue of a DOK/LIL matrix), then Freeze()-d into an
//	immutable CSR-like Matrix with sorted rows, whose Nnz() is O(1) and whose
//	NonZero() lists entries row by row. This two-phase split follows the
//	common sparse-matrix builder→frozen-form convention: construction is
//	write-heavy and mutation-friendly, the frozen form is read-heavy.
//
// Complexity:
//
//	Builder.Set: O(1) amortized. Matrix.Get: O(log d) where d is row degree
//	(binary search over sorted cols).
//	Or: O(rows*avg-degree). MatMul/Kron: see method docs.
package boolmatrix
