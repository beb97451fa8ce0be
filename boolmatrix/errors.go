// SPDX-License-Identifier: MIT
// Package boolmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All algorithms MUST
// return these sentinels and tests MUST check them via errors.Is. Per spec,
// bad shapes are programmer errors: boolmatrix returns ErrInvalidShape for
// non-positive dimensions and ErrDimensionMismatch for incompatible operands
// rather than panicking, but callers should treat both as fatal/assertion-level
// rather than attempt recovery.

package boolmatrix

import "errors"

var (
	// ErrInvalidShape indicates non-positive dimensions were requested.
	ErrInvalidShape = errors.New("boolmatrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// (e.g. MatMul where a.Cols != b.Rows, Or where shapes differ).
	ErrDimensionMismatch = errors.New("boolmatrix: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("boolmatrix: index out of range")
)
