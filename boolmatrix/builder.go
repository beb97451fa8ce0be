package boolmatrix

import "sort"

// Builder accumulates true entries for an R×C boolean matrix before they are
// frozen into a Matrix. It is the boolean analogue of a DOK/LIL sparse
// matrix: row-bucketed sets that tolerate arbitrary insertion order and
// repeated Set calls.
//
// A Builder is not safe for concurrent use; callers that want to populate
// rows concurrently must partition by row and merge, or guard with their own
// lock. cfpq.WithParallelSweep shares no Builder: each of its goroutines
// writes its own MatMul result slot.
type Builder struct {
	rows, cols int
	data       []map[int]struct{} // data[i] = set of columns set in row i
	nnz        int
}

// NewBuilder allocates an empty Builder for an R×C matrix. Zero rows/cols are
// accepted here (unlike NewZero) and simply produce a builder that can never
// Set anything usefully; Freeze on such a builder still returns a valid
// degenerate Matrix so callers don't need to special-case 0-sized automata.
// A negative row count panics in the underlying make.
// Complexity: O(r).
func NewBuilder(rows, cols int) *Builder {
	return &Builder{rows: rows, cols: cols, data: make([]map[int]struct{}, rows)}
}

// Set idempotently marks entry (i,j) true. Out-of-range indices are ignored
// defensively by callers that pre-validate; Builder itself panics on
// negative/overflowing indices only via the underlying slice/map access,
// which is a programmer error per the package's shape-mismatch policy.
// Complexity: O(1) amortized.
func (b *Builder) Set(i, j int) {
	if b.data[i] == nil {
		b.data[i] = make(map[int]struct{})
	}
	if _, ok := b.data[i][j]; !ok {
		b.data[i][j] = struct{}{}
		b.nnz++
	}
}

// Nnz returns the current true-entry count. Complexity: O(1).
func (b *Builder) Nnz() int { return b.nnz }

// Freeze compiles the builder into an immutable, row-sorted CSR-like Matrix.
// The builder remains usable afterwards (Freeze does not consume it), though
// callers typically discard it once frozen.
// Complexity: O(nnz log avg-degree) for per-row sorts.
func (b *Builder) Freeze() *Matrix {
	rowStart := make([]int, b.rows+1)
	colIdx := make([]int, 0, b.nnz)
	for i := 0; i < b.rows; i++ {
		rowStart[i] = len(colIdx)
		row := b.data[i]
		if len(row) == 0 {
			continue
		}
		start := len(colIdx)
		for j := range row {
			colIdx = append(colIdx, j)
		}
		sort.Ints(colIdx[start:])
	}
	rowStart[b.rows] = len(colIdx)

	return &Matrix{rows: b.rows, cols: b.cols, rowStart: rowStart, colIdx: colIdx}
}
