package boolmatrix

import "sort"

// Matrix is an immutable, frozen sparse boolean R×C matrix in CSR-like form:
// rowStart holds R+1 offsets into colIdx, and colIdx[rowStart[i]:rowStart[i+1]]
// holds the sorted, de-duplicated column indices with a true entry in row i.
//
// Matrix values are produced by Builder.Freeze, MatMul, Kron, BlockDiag, Or,
// or NewIdentity/NewZero; a Matrix is never mutated in place after construction —
// every operation below returns a new Matrix. NewIdentity and NewZero return
// ready-made identity and zero matrices a caller can use directly.
type Matrix struct {
	rows, cols int
	rowStart   []int
	colIdx     []int
}

// NewZero returns the r×c zero matrix (no true entries).
// Complexity: O(r).
func NewZero(r, c int) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidShape
	}

	return &Matrix{rows: r, cols: c, rowStart: make([]int, r+1)}, nil
}

// NewIdentity returns the n×n identity boolean matrix (diagonal set).
// Complexity: O(n).
func NewIdentity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidShape
	}
	m := &Matrix{rows: n, cols: n, rowStart: make([]int, n+1), colIdx: make([]int, n)}
	for i := 0; i < n; i++ {
		m.rowStart[i] = i
		m.colIdx[i] = i
	}
	m.rowStart[n] = n

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Nnz returns the exact number of true entries. Complexity: O(1).
func (m *Matrix) Nnz() int { return len(m.colIdx) }

// Get reports whether entry (i,j) is true. Returns ErrOutOfRange for
// out-of-bounds indices.
// Complexity: O(log d) where d is the degree of row i.
func (m *Matrix) Get(i, j int) (bool, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false, ErrOutOfRange
	}
	row := m.colIdx[m.rowStart[i]:m.rowStart[i+1]]
	k := sort.SearchInts(row, j)

	return k < len(row) && row[k] == j, nil
}

// rowSlice returns the (already sorted) column indices for row i without
// bounds checking; used internally by ops that already validated shapes.
func (m *Matrix) rowSlice(i int) []int {
	return m.colIdx[m.rowStart[i]:m.rowStart[i+1]]
}

// Or returns the element-wise OR of m and other. Shapes must match exactly.
// Complexity: O(rows*(deg_m+deg_other)).
func (m *Matrix) Or(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	b := NewBuilder(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for _, j := range m.rowSlice(i) {
			b.Set(i, j)
		}
		for _, j := range other.rowSlice(i) {
			b.Set(i, j)
		}
	}

	return b.Freeze(), nil
}

// MatMul computes the boolean matrix product m @ other: result[i,k] is true
// iff there exists j with m[i,j] and other[j,k] both true. Dimensions must
// align: m.Cols() == other.Rows().
// Complexity: O(rows * deg_m * deg_other_row) in the worst case; each nonzero
// of row i of m contributes the full row of other at that column.
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, ErrDimensionMismatch
	}
	b := NewBuilder(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		row := m.rowSlice(i)
		if len(row) == 0 {
			continue
		}
		seen := make(map[int]struct{}, len(row))
		for _, j := range row {
			for _, k := range other.rowSlice(j) {
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				b.Set(i, k)
			}
		}
	}

	return b.Freeze(), nil
}

// Kron computes the Kronecker boolean product of m (N1×M1) and other
// (N2×M2), yielding an (N1*N2)×(M1*M2) matrix where entry
// (i1*N2+i2, j1*M2+j2) is true iff m[i1,j1] and other[i2,j2] are both true.
// Complexity: O(nnz(m) * nnz(other)) in the worst case.
func (m *Matrix) Kron(other *Matrix) *Matrix {
	n2, m2 := other.rows, other.cols
	b := NewBuilder(m.rows*n2, m.cols*m2)
	for i1 := 0; i1 < m.rows; i1++ {
		row1 := m.rowSlice(i1)
		if len(row1) == 0 {
			continue
		}
		for i2 := 0; i2 < n2; i2++ {
			row2 := other.rowSlice(i2)
			if len(row2) == 0 {
				continue
			}
			destRow := i1*n2 + i2
			for _, j1 := range row1 {
				base := j1 * m2
				for _, j2 := range row2 {
					b.Set(destRow, base+j2)
				}
			}
		}
	}

	return b.Freeze()
}

// BlockDiag returns the (rows_m+rows_other)×(cols_m+cols_other) matrix with m
// in the top-left block and other in the bottom-right block; all other
// entries are false.
// Complexity: O(nnz(m)+nnz(other)).
func (m *Matrix) BlockDiag(other *Matrix) *Matrix {
	b := NewBuilder(m.rows+other.rows, m.cols+other.cols)
	for i := 0; i < m.rows; i++ {
		for _, j := range m.rowSlice(i) {
			b.Set(i, j)
		}
	}
	for i := 0; i < other.rows; i++ {
		for _, j := range other.rowSlice(i) {
			b.Set(m.rows+i, m.cols+j)
		}
	}

	return b.Freeze()
}

// Coord is a single non-zero (row, col) coordinate.
type Coord struct {
	Row, Col int
}

// NonZero returns the row-major ordered list of true entries, built afresh
// on each call. The returned slice is owned by the caller; the Matrix keeps no
// reference to it.
// Complexity: O(nnz).
func (m *Matrix) NonZero() []Coord {
	out := make([]Coord, 0, len(m.colIdx))
	for i := 0; i < m.rows; i++ {
		for _, j := range m.rowSlice(i) {
			out = append(out, Coord{Row: i, Col: j})
		}
	}

	return out
}

// Clone returns a Matrix with identical contents; since Matrix is already
// immutable after construction, Clone is a cheap defensive copy for callers
// who want to guarantee no aliasing with m's backing slices.
// Complexity: O(rows + nnz).
func (m *Matrix) Clone() *Matrix {
	rs := make([]int, len(m.rowStart))
	copy(rs, m.rowStart)
	ci := make([]int, len(m.colIdx))
	copy(ci, m.colIdx)

	return &Matrix{rows: m.rows, cols: m.cols, rowStart: rs, colIdx: ci}
}
