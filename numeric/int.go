// SPDX-License-Identifier: MIT

package numeric

import (
	"math/big"
	"strconv"
)

// Int is an int64 element. Arithmetic wraps on overflow like int64 does.
type Int int64

var _ IntegralLike[Int] = Int(0)

func (x Int) Equal(y Int) bool { return x == y }
func (x Int) Add(y Int) Int    { return x + y }
func (x Int) Sub(y Int) Int    { return x - y }
func (x Int) Mul(y Int) Int    { return x * y }

// Div is floor division, so the quotient stays an Int. For a real-valued
// quotient use Float64 on both operands (matrix.TrueDiv does that).
func (x Int) Div(y Int) Int { return x.FloorDiv(y) }

// Pow returns x**y by repeated squaring. A negative exponent truncates the
// real result toward zero: 1 for x == 1, ±1 for x == -1 and 0 otherwise.
// 0 to a negative power panics with an integer divide by zero.
func (x Int) Pow(y Int) Int {
	if y < 0 {
		q := 1 / int64(x)
		if q == -1 && y%2 == 0 {
			q = 1
		}
		return Int(q)
	}
	result, base := int64(1), int64(x)
	for e := uint64(y); e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
	}

	return Int(result)
}

func (x Int) Neg() Int { return -x }
func (x Int) Pos() Int { return x }

func (x Int) Abs() Int {
	if x < 0 {
		return -x
	}

	return x
}

func (x Int) Conj() Int { return x }

func (x Int) Complex128() complex128 { return complex(float64(x), 0) }
func (x Int) Float64() float64       { return float64(x) }

func (x Int) Less(y Int) bool      { return x < y }
func (x Int) LessEqual(y Int) bool { return x <= y }

// FloorDiv rounds toward negative infinity. A zero divisor panics.
func (x Int) FloorDiv(y Int) Int {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}

	return q
}

// Mod returns the remainder with the sign of the divisor. A zero divisor
// panics.
func (x Int) Mod(y Int) Int {
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	return r
}

func (x Int) BigInt() *big.Int { return big.NewInt(int64(x)) }

// Index returns x as an int, failing on platforms where int is narrower
// than int64 and x does not fit.
func (x Int) Index() (int, error) {
	if int64(int(x)) != int64(x) {
		return 0, ErrLossyConversion
	}

	return int(x), nil
}

func (x Int) And(y Int) Int { return x & y }
func (x Int) Or(y Int) Int  { return x | y }
func (x Int) Xor(y Int) Int { return x ^ y }

// Lsh shifts left by y bits; a negative count panics.
func (x Int) Lsh(y Int) Int { return x << y }

// Rsh shifts right arithmetically by y bits; a negative count panics.
func (x Int) Rsh(y Int) Int { return x >> y }

func (x Int) Not() Int { return ^x }

func (x Int) String() string { return strconv.FormatInt(int64(x), 10) }
