// SPDX-License-Identifier: MIT
// Package matrix - operator plumbing shared by the ops_*.go facades.
//
// Purpose:
//   - Define operation tags for unified error wrapping.
//   - Route every element-wise operator through MapSeq/ApplySeq and
//     materialise the result into a fresh matrix.
//
// Notes:
//   - Facades never mutate operands; every result is newly allocated.
//   - Errors are wrapped as "<Op>: <validator>: <sentinel>" and still match
//     errors.Is.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opDiv          = "Div"
	opPow          = "Pow"
	opMatMul       = "MatMul"
	opNeg          = "Neg"
	opPos          = "Pos"
	opAbs          = "Abs"
	opConj         = "Conj"
	opEq           = "Eq"
	opNe           = "Ne"
	opEqual        = "Equal"
	opToComplex    = "ToComplex"
	opComplex128   = "Complex128"
	opLt           = "Lt"
	opLe           = "Le"
	opGt           = "Gt"
	opGe           = "Ge"
	opCompare      = "Compare"
	opFloorDiv     = "FloorDiv"
	opMod          = "Mod"
	opDivMod       = "DivMod"
	opTrueDiv      = "TrueDiv"
	opToReal       = "ToReal"
	opFloat64      = "Float64"
	opLsh          = "Lsh"
	opRsh          = "Rsh"
	opBitAnd       = "BitAnd"
	opBitOr        = "BitOr"
	opBitXor       = "BitXor"
	opInvert       = "Invert"
	opToBigInt     = "ToBigInt"
	opInt          = "Int"
	opIndices      = "Indices"
	opIndex        = "Index"
	opTruth        = "Truth"
	opAnd          = "And"
	opOr           = "Or"
	opXor          = "Xor"
	opNot          = "Not"
	opTranspose    = "Transpose"
	opCompareOrder = "CompareOrdered"
	opClose        = "Close"
	opAllClose     = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binary maps f over a and b and collects the result.
func binary[T, U, R any](op string, f func(T, U) R, a Operand[T], b Operand[U]) (*Matrix[R], error) {
	shape, seq, err := MapSeq(f, a, b)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	return collect(shape, seq), nil
}

// unary maps f over m and collects the result.
func unary[T, R any](op string, f func(T) R, m *Matrix[T]) (*Matrix[R], error) {
	shape, seq, err := ApplySeq(f, m)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	return collect(shape, seq), nil
}

// demote returns the single element of a size-1 operand.
func demote[T any](op string, m *Matrix[T]) (T, error) {
	if err := ValidateScalar(m); err != nil {
		var zero T
		return zero, matrixErrorf(op, err)
	}

	return m.data[0], nil
}

// Transpose returns mᵀ as a new matrix. It is the nil-safe form of
// m.Transpose().
func Transpose[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}
