// SPDX-License-Identifier: MIT
// Package matrix - operators available to every ComplexLike element type.
//
// Binary operators take Operands, so either side may be a Scalar:
//
//	Sub(Scalar(numeric.Int(1)), m) // 1 - m, element-wise
//
// Errors (binary): ErrNilMatrix, ErrShapeMismatch, ErrNoMatrixOperand.
// Errors (unary):  ErrNilMatrix.

package matrix

import "github.com/katalvlaran/matrices/numeric"

// Add returns element-wise a + b.
func Add[T numeric.ComplexLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opAdd, func(x, y T) T { return x.Add(y) }, a, b)
}

// Sub returns element-wise a - b, using numeric.Sub (T's own Sub when it has
// one, a + (-b) otherwise).
func Sub[T numeric.ComplexLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opSub, numeric.Sub[T], a, b)
}

// Mul returns element-wise a * b. For the matrix product see MatMul.
func Mul[T numeric.ComplexLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opMul, func(x, y T) T { return x.Mul(y) }, a, b)
}

// Div returns element-wise a / b using T's Div.
func Div[T numeric.ComplexLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opDiv, func(x, y T) T { return x.Div(y) }, a, b)
}

// Pow returns element-wise a ** b.
func Pow[T numeric.ComplexLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opPow, func(x, y T) T { return x.Pow(y) }, a, b)
}

// MatMul returns the matrix product a × b of shapes (m, n) and (n, q).
//
// Errors:
//   - ErrNoMatrixOperand if either side is a Scalar.
//   - ErrShapeMismatch if a.Cols != b.Rows.
//   - ErrDegenerateDimension if n == 0.
//
// Complexity:
//   - Time O(m*n*q), Space O(m*q).
func MatMul[T numeric.ComplexLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	am, err := resolveMatrix(a)
	if err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	bm, err := resolveMatrix(b)
	if err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	shape, seq, err := MatMulSeq(am, bm)
	if err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	return collect(shape, seq), nil
}

// Neg returns element-wise -m.
func Neg[T numeric.ComplexLike[T]](m *Matrix[T]) (*Matrix[T], error) {
	return unary(opNeg, func(x T) T { return x.Neg() }, m)
}

// Pos returns element-wise +m.
func Pos[T numeric.ComplexLike[T]](m *Matrix[T]) (*Matrix[T], error) {
	return unary(opPos, func(x T) T { return x.Pos() }, m)
}

// Abs returns element-wise |m|.
func Abs[T numeric.ComplexLike[T]](m *Matrix[T]) (*Matrix[T], error) {
	return unary(opAbs, func(x T) T { return x.Abs() }, m)
}

// Conj returns the element-wise complex conjugate of m.
func Conj[T numeric.ComplexLike[T]](m *Matrix[T]) (*Matrix[T], error) {
	return unary(opConj, func(x T) T { return x.Conj() }, m)
}

// Eq returns element-wise a == b.
func Eq[T numeric.ComplexLike[T]](a, b Operand[T]) (*Matrix[bool], error) {
	return binary(opEq, func(x, y T) bool { return x.Equal(y) }, a, b)
}

// Ne returns element-wise a != b.
func Ne[T numeric.ComplexLike[T]](a, b Operand[T]) (*Matrix[bool], error) {
	return binary(opNe, func(x, y T) bool { return !x.Equal(y) }, a, b)
}

// Equal reports whether every element pair of a and b is equal. It agrees
// with Compare(a, b) == 0 for RealLike elements. A matrix is always equal to
// itself. Both operands must be matrices; a Scalar yields ErrNoMatrixOperand.
func Equal[T numeric.ComplexLike[T]](a, b Operand[T]) (bool, error) {
	am, err := resolveMatrix(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	bm, err := resolveMatrix(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if am == bm {
		return true, nil
	}
	_, seq, err := MapSeq[T, T, bool](func(x, y T) bool { return x.Equal(y) }, am, bm)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for eq := range seq {
		if !eq {
			return false, nil
		}
	}

	return true, nil
}

// ToComplex converts every element to numeric.Complex.
func ToComplex[T numeric.ComplexLike[T]](m *Matrix[T]) (*Matrix[numeric.Complex], error) {
	return unary(opToComplex, func(x T) numeric.Complex { return numeric.Complex(x.Complex128()) }, m)
}

// Complex128 demotes a size-1 matrix to its complex value.
//
// Errors:
//   - ErrNilMatrix, ErrNotScalar.
func Complex128[T numeric.ComplexLike[T]](m *Matrix[T]) (complex128, error) {
	v, err := demote(opComplex128, m)
	if err != nil {
		return 0, err
	}

	return v.Complex128(), nil
}
