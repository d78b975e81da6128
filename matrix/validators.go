// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape and operand checks.
//   - Keep kernels minimal by delegating nil/shape/size checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → kinds → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have pairwise-equal dimensions.
// Equal sizes with different shapes, such as (2,3) and (3,2), are rejected.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape[T, U any](a *Matrix[T], b *Matrix[U]) error {
	if a.shape != b.shape {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%w: %v is incompatible with operand shape %v", ErrShapeMismatch, a.shape, b.shape))
	}

	return nil
}

// ValidateMulCompatible checks the operands of a matrix product:
// NotNil(a) → NotNil(b) → a.Cols == b.Rows → inner dimension > 0.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrDegenerateDimension.
// Complexity: O(1).
func ValidateMulCompatible[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.shape.cols != b.shape.rows {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%w: %v is incompatible with operand shape %v", ErrShapeMismatch, a.shape, b.shape))
	}
	if a.shape.cols == 0 {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%w: cannot contract %v with %v over an empty dimension", ErrDegenerateDimension, a.shape, b.shape))
	}

	return nil
}

// ValidateScalar ensures m holds exactly one element, so it can be demoted
// to a scalar.
func ValidateScalar[T any](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateScalar", err)
	}
	if len(m.data) != 1 {
		return validatorErrorf("ValidateScalar", fmt.Errorf("%w: shape %v", ErrNotScalar, m.shape))
	}

	return nil
}

// validateSize checks a storage length against a shape.
func validateSize(shape Shape, n int) error {
	if shape.rows < 0 || shape.cols < 0 {
		return validatorErrorf("validateSize", ErrBadShape)
	}
	if n != shape.Size() {
		return validatorErrorf("validateSize",
			fmt.Errorf("%w: %d elements for shape %v", ErrSizeMismatch, n, shape))
	}

	return nil
}
