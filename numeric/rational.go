// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// Rational is an exact fraction backed by math/big.Rat. Values are
// immutable: every operation allocates a fresh big.Rat, so a Rational can be
// copied and shared freely. The zero value is 0.
type Rational struct {
	r *big.Rat // nil means 0
}

var _ RealLike[Rational] = Rational{}

// NewRational returns num/den in lowest terms. A zero den panics.
func NewRational(num, den int64) Rational { return Rational{r: big.NewRat(num, den)} }

// RationalFromBig copies r into a new Rational.
func RationalFromBig(r *big.Rat) Rational {
	if r == nil {
		return Rational{}
	}

	return Rational{r: new(big.Rat).Set(r)}
}

// RationalFromFloat returns the exact value of f, or false when f is not
// finite.
func RationalFromFloat(f float64) (Rational, bool) {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return Rational{}, false
	}

	return Rational{r: r}, true
}

func (x Rational) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}

	return x.r
}

// Rat returns a copy of the underlying value.
func (x Rational) Rat() *big.Rat { return new(big.Rat).Set(x.rat()) }

func (x Rational) Equal(y Rational) bool { return x.rat().Cmp(y.rat()) == 0 }

func (x Rational) Add(y Rational) Rational {
	return Rational{r: new(big.Rat).Add(x.rat(), y.rat())}
}

func (x Rational) Sub(y Rational) Rational {
	return Rational{r: new(big.Rat).Sub(x.rat(), y.rat())}
}

func (x Rational) Mul(y Rational) Rational {
	return Rational{r: new(big.Rat).Mul(x.rat(), y.rat())}
}

// Div returns the exact quotient. A zero divisor panics.
func (x Rational) Div(y Rational) Rational {
	return Rational{r: new(big.Rat).Quo(x.rat(), y.rat())}
}

// Pow is exact for integral exponents that fit in an int64. Other exponents
// go through float64; a non-finite float result panics, as it has no
// rational value.
func (x Rational) Pow(y Rational) Rational {
	yr := y.rat()
	if yr.IsInt() && yr.Num().IsInt64() {
		e := yr.Num().Int64()
		base := x.rat()
		if e < 0 {
			base = new(big.Rat).Inv(base) // panics on 0 like 0**-n
			e = -e
		}
		num := new(big.Int).Exp(base.Num(), big.NewInt(e), nil)
		den := new(big.Int).Exp(base.Denom(), big.NewInt(e), nil)
		return Rational{r: new(big.Rat).SetFrac(num, den)}
	}
	f := math.Pow(x.Float64(), y.Float64())
	out, ok := RationalFromFloat(f)
	if !ok {
		panic(fmt.Sprintf("numeric: %v ** %v has no rational value", x, y))
	}

	return out
}

func (x Rational) Neg() Rational { return Rational{r: new(big.Rat).Neg(x.rat())} }
func (x Rational) Pos() Rational { return x }
func (x Rational) Abs() Rational { return Rational{r: new(big.Rat).Abs(x.rat())} }
func (x Rational) Conj() Rational { return x }

func (x Rational) Complex128() complex128 { return complex(x.Float64(), 0) }

// Float64 returns the nearest float64.
func (x Rational) Float64() float64 {
	f, _ := x.rat().Float64()

	return f
}

func (x Rational) Less(y Rational) bool      { return x.rat().Cmp(y.rat()) < 0 }
func (x Rational) LessEqual(y Rational) bool { return x.rat().Cmp(y.rat()) <= 0 }

// FloorDiv returns floor(x / y) as an integral Rational. A zero divisor
// panics.
func (x Rational) FloorDiv(y Rational) Rational {
	q := new(big.Rat).Quo(x.rat(), y.rat())
	// Denom is always positive, so Euclidean division is floor division.
	n := new(big.Int).Div(q.Num(), q.Denom())

	return Rational{r: new(big.Rat).SetInt(n)}
}

// Mod returns x - y*floor(x/y).
func (x Rational) Mod(y Rational) Rational {
	return x.Sub(y.Mul(x.FloorDiv(y)))
}

func (x Rational) String() string { return x.rat().RatString() }
