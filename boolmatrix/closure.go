package boolmatrix

// TransitiveClosure computes symbol-agnostic reachability over a set of
// per-symbol adjacency matrices that all share the same N×N shape: the union
// M0 = OR_s matrices[s], then the monotone fixed point M <- M OR (M @ M)
// until Nnz stops growing. If matrices is empty, the N×N zero matrix is
// returned.
//
// Complexity: O(log N) doublings in practice, each O(N * avg-degree^2)-ish
// via MatMul; bounded by N^2 total true entries.
func TransitiveClosure(n int, matrices map[string]*Matrix) (*Matrix, error) {
	if len(matrices) == 0 {
		return NewZero(n, n)
	}

	var union *Matrix
	for _, mat := range matrices {
		if union == nil {
			union = mat.Clone()
			continue
		}
		var err error
		union, err = union.Or(mat)
		if err != nil {
			return nil, err
		}
	}

	prevNnz := -1
	for prevNnz != union.Nnz() {
		prevNnz = union.Nnz()
		sq, err := union.MatMul(union)
		if err != nil {
			return nil, err
		}
		union, err = union.Or(sq)
		if err != nil {
			return nil, err
		}
	}

	return union, nil
}
