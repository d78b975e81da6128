// SPDX-License-Identifier: MIT

// Package numeric defines the scalar capability tower used by package matrix
// and the concrete element types that satisfy it.
//
// What:
//
//   - ComplexLike[T]: equality, +, ×, ÷, **, negation, unary plus, abs,
//     conjugate and conversion to complex128. Subtraction is derived
//     (a + (-b)) unless T provides its own Sub, see Sub.
//   - RealLike[T]: ComplexLike plus ordering (Less, LessEqual), floor
//     division, modulo and conversion to float64.
//   - IntegralLike[T]: RealLike plus exact conversion to *big.Int, lossless
//     Index and the bitwise surface (And, Or, Xor, Lsh, Rsh, Not).
//
// Every interface is parameterised by the implementing type itself, so a
// generic function written as
//
//	func f[T numeric.RealLike[T]](x, y T) T
//
// can only be instantiated with element types that actually carry the
// required operations. The compiler, not a runtime check, rejects floor
// division over complex elements.
//
// Concrete types:
//
//   - Complex  (complex128)      ComplexLike
//   - Real     (float64)         RealLike
//   - Rational (math/big.Rat)    RealLike, exact
//   - Int      (int64)           IntegralLike
//
// The zero value of every concrete type is numeric zero, which is what the
// matrix package relies on for truthiness.
//
// Errors:
//
//   - ErrLossyConversion  Index on a value with no exact int representation
package numeric
