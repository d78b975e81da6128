// SPDX-License-Identifier: MIT
// Package numeric - the capability tower.
//
// Purpose:
//   - Declare the three scalar contracts as self-referential generic
//     interfaces (T satisfies ComplexLike[T]) so capability checks are static.
//   - Provide the derived operations (Sub, Greater, GreaterEqual, Compare,
//     Truth) once, as free functions over the contracts.
//
// Notes:
//   - Operations never mutate the receiver; they return new values.
//   - Integer-style arithmetic faults (division by zero, negative shift
//     counts) panic exactly like the native Go operators do.

package numeric

import "math/big"

// ComplexLike is the root of the tower.
type ComplexLike[T any] interface {
	// Equal reports a == b.
	Equal(other T) bool
	// Add returns a + b.
	Add(other T) T
	// Mul returns a * b.
	Mul(other T) T
	// Div returns a / b, closed over T (see the concrete types for the
	// exact rounding rule).
	Div(other T) T
	// Pow returns a ** b, closed over T.
	Pow(other T) T
	// Neg returns -a.
	Neg() T
	// Pos returns +a.
	Pos() T
	// Abs returns |a| expressed in T.
	Abs() T
	// Conj returns the complex conjugate of a.
	Conj() T
	// Complex128 returns the canonical complex representation.
	Complex128() complex128
}

// Subtracter is implemented by element types that override the derived
// subtraction a + (-b).
type Subtracter[T any] interface {
	Sub(other T) T
}

// RealLike extends ComplexLike with ordering.
type RealLike[T any] interface {
	ComplexLike[T]

	// Less reports a < b.
	Less(other T) bool
	// LessEqual reports a <= b.
	LessEqual(other T) bool
	// FloorDiv returns floor(a / b).
	FloorDiv(other T) T
	// Mod returns a - b*floor(a/b); the result carries the sign of b.
	Mod(other T) T
	// Float64 returns the canonical real representation.
	Float64() float64
}

// IntegralLike extends RealLike with exact integer conversion and bitwise
// operations.
type IntegralLike[T any] interface {
	RealLike[T]

	// BigInt returns the canonical exact integer. The result is owned by the
	// caller.
	BigInt() *big.Int
	// Index returns the value as an int, or ErrLossyConversion when it does
	// not fit.
	Index() (int, error)

	And(other T) T
	Or(other T) T
	Xor(other T) T
	Lsh(other T) T
	Rsh(other T) T
	Not() T
}

// Sub returns a - b. It uses T's own Sub when T implements Subtracter,
// otherwise a + (-b).
func Sub[T ComplexLike[T]](a, b T) T {
	if s, ok := any(a).(Subtracter[T]); ok {
		return s.Sub(b)
	}

	return a.Add(b.Neg())
}

// Greater reports a > b by swapping the operands of Less.
func Greater[T RealLike[T]](a, b T) bool { return b.Less(a) }

// GreaterEqual reports a >= b by swapping the operands of LessEqual.
func GreaterEqual[T RealLike[T]](a, b T) bool { return b.LessEqual(a) }

// Compare returns -1 if a < b, +1 if a > b and 0 otherwise.
// Unordered pairs (NaN) compare as 0.
func Compare[T RealLike[T]](a, b T) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// IsZero reports whether x equals the zero value of T.
func IsZero[T ComplexLike[T]](x T) bool {
	var zero T

	return x.Equal(zero)
}

// Truth is the boolean interpretation of x: true unless x is zero.
func Truth[T ComplexLike[T]](x T) bool { return !IsZero(x) }
