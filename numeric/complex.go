// SPDX-License-Identifier: MIT

package numeric

import (
	"math/cmplx"
	"strconv"
)

// Complex is a complex128 element.
type Complex complex128

var _ ComplexLike[Complex] = Complex(0)

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex { return Complex(complex(re, im)) }

func (x Complex) Equal(y Complex) bool { return x == y }
func (x Complex) Add(y Complex) Complex { return x + y }
func (x Complex) Sub(y Complex) Complex { return x - y }
func (x Complex) Mul(y Complex) Complex { return x * y }

// Div follows IEEE-754 complex division; a zero divisor yields Inf/NaN parts.
func (x Complex) Div(y Complex) Complex { return x / y }

func (x Complex) Pow(y Complex) Complex {
	return Complex(cmplx.Pow(complex128(x), complex128(y)))
}

func (x Complex) Neg() Complex { return -x }
func (x Complex) Pos() Complex { return x }

// Abs returns the modulus as a Complex with zero imaginary part.
func (x Complex) Abs() Complex { return Complex(complex(cmplx.Abs(complex128(x)), 0)) }

func (x Complex) Conj() Complex           { return Complex(cmplx.Conj(complex128(x))) }
func (x Complex) Complex128() complex128 { return complex128(x) }

// Real returns the real part.
func (x Complex) Real() float64 { return real(complex128(x)) }

// Imag returns the imaginary part.
func (x Complex) Imag() float64 { return imag(complex128(x)) }

func (x Complex) String() string { return strconv.FormatComplex(complex128(x), 'g', -1, 128) }
