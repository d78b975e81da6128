// SPDX-License-Identifier: MIT

package matrix

// Operand is either a *Matrix[T] (or a typed view embedding one) or a bare
// scalar wrapped by Scalar. Binary operators accept Operands on both sides;
// a scalar is broadcast to the shape of the other operand. The interface is
// sealed: only this package implements it.
type Operand[T any] interface {
	operand() operandValue[T]
}

// operandValue is the resolved form of an Operand.
type operandValue[T any] struct {
	m      *Matrix[T] // nil for scalars (and for nil matrices)
	v      T          // broadcast value when scalar
	scalar bool
}

// elem returns position k, broadcasting scalars.
func (o operandValue[T]) elem(k int) T {
	if o.scalar {
		return o.v
	}

	return o.m.data[k]
}

func (m *Matrix[T]) operand() operandValue[T] { return operandValue[T]{m: m} }

type scalar[T any] struct{ v T }

func (s scalar[T]) operand() operandValue[T] { return operandValue[T]{v: s.v, scalar: true} }

// Scalar wraps v so it can stand in for a matrix in a binary operation. It is
// treated as a matrix of the other operand's shape with every position
// holding v.
func Scalar[T any](v T) Operand[T] { return scalar[T]{v: v} }

// resolve turns an Operand into its value, rejecting nil matrices.
func resolve[T any](o Operand[T]) (operandValue[T], error) {
	if o == nil {
		return operandValue[T]{}, ErrNilMatrix
	}
	ov := o.operand()
	if !ov.scalar && ov.m == nil {
		return operandValue[T]{}, ErrNilMatrix
	}

	return ov, nil
}

// resolveMatrix resolves o and requires it to be a matrix.
func resolveMatrix[T any](o Operand[T]) (*Matrix[T], error) {
	ov, err := resolve(o)
	if err != nil {
		return nil, err
	}
	if ov.scalar {
		return nil, ErrNoMatrixOperand
	}

	return ov.m, nil
}

// broadcastShape is the common shape of two resolved operands: the shape of
// the matrix side when the other is a scalar, the shared shape when both are
// matrices.
func broadcastShape[T, U any](a operandValue[T], b operandValue[U]) (Shape, error) {
	switch {
	case a.scalar && b.scalar:
		return Shape{}, ErrNoMatrixOperand
	case a.scalar:
		return b.m.shape, nil
	case b.scalar:
		return a.m.shape, nil
	}
	if err := ValidateSameShape(a.m, b.m); err != nil {
		return Shape{}, err
	}

	return a.m.shape, nil
}
