// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"strconv"
)

// Real is a float64 element.
type Real float64

var _ RealLike[Real] = Real(0)

func (x Real) Equal(y Real) bool { return x == y }
func (x Real) Add(y Real) Real   { return x + y }
func (x Real) Sub(y Real) Real   { return x - y }
func (x Real) Mul(y Real) Real   { return x * y }
func (x Real) Div(y Real) Real   { return x / y }
func (x Real) Pow(y Real) Real   { return Real(math.Pow(float64(x), float64(y))) }
func (x Real) Neg() Real         { return -x }
func (x Real) Pos() Real         { return x }
func (x Real) Abs() Real         { return Real(math.Abs(float64(x))) }
func (x Real) Conj() Real        { return x }

func (x Real) Complex128() complex128 { return complex(float64(x), 0) }
func (x Real) Float64() float64       { return float64(x) }

func (x Real) Less(y Real) bool      { return x < y }
func (x Real) LessEqual(y Real) bool { return x <= y }

// FloorDiv returns floor(x / y). A zero divisor yields ±Inf or NaN.
func (x Real) FloorDiv(y Real) Real {
	return Real(math.Floor(float64(x) / float64(y)))
}

// Mod returns the remainder with the sign of the divisor.
func (x Real) Mod(y Real) Real {
	r := math.Mod(float64(x), float64(y))
	if r != 0 && (r < 0) != (y < 0) {
		r += float64(y)
	}

	return Real(r)
}

func (x Real) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }
