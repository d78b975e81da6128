// SPDX-License-Identifier: MIT
// Package matrix - tolerance-based comparisons.
//
// Purpose:
//   - Exact Equal is the right test for Int and Rational matrices; results of
//     floating arithmetic need a tolerance.
//   - Close and AllClose check, per element, |a-b| ≤ atol + rtol*|b|, where
//     |·| is the modulus of the Complex128 value, so every ComplexLike
//     element type is supported. Tolerances come from options.go.
//
// Contract:
//   - Same operand rules as the other binary operators (nil, shape,
//     broadcasting).
//   - NaN is never close to anything unless WithEqualNaN is given.

package matrix

import (
	"math/cmplx"

	"github.com/katalvlaran/matrices/numeric"
)

// closeFn returns the per-element predicate |x-y| ≤ atol + rtol*|y|.
func closeFn[T numeric.ComplexLike[T]](o Options) func(x, y T) bool {
	return func(x, y T) bool {
		xv, yv := x.Complex128(), y.Complex128()
		if xv == yv {
			return true // also covers equal infinities
		}
		if cmplx.IsNaN(xv) || cmplx.IsNaN(yv) {
			return o.equalNaN && cmplx.IsNaN(xv) && cmplx.IsNaN(yv)
		}

		return cmplx.Abs(xv-yv) <= o.atol+o.rtol*cmplx.Abs(yv)
	}
}

// Close returns the element-wise result of |a-b| ≤ atol + rtol*|b|.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNoMatrixOperand.
func Close[T numeric.ComplexLike[T]](a, b Operand[T], opts ...Option) (*Matrix[bool], error) {
	return binary(opClose, closeFn[T](gatherOptions(opts...)), a, b)
}

// AllClose reports whether every element pair of a and b is close. It stops
// at the first violation.
//
// Complexity:
//   - Time O(k) where k is the position of the first violation, Space O(1).
func AllClose[T numeric.ComplexLike[T]](a, b Operand[T], opts ...Option) (bool, error) {
	_, seq, err := MapSeq(closeFn[T](gatherOptions(opts...)), a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for ok := range seq {
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
