// SPDX-License-Identifier: MIT

package numeric

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Ints converts native integers to Int. Unsigned values above MaxInt64 wrap.
func Ints[N constraints.Integer](xs ...N) []Int {
	return lo.Map(xs, func(x N, _ int) Int { return Int(x) })
}

// Reals converts native floats to Real.
func Reals[F constraints.Float](xs ...F) []Real {
	return lo.Map(xs, func(x F, _ int) Real { return Real(x) })
}

// Complexes converts native complex numbers to Complex.
func Complexes[C constraints.Complex](xs ...C) []Complex {
	return lo.Map(xs, func(x C, _ int) Complex { return Complex(complex128(x)) })
}

// Rationals converts native integers to integral Rationals.
func Rationals[N constraints.Integer](xs ...N) []Rational {
	return lo.Map(xs, func(x N, _ int) Rational { return NewRational(int64(x), 1) })
}
