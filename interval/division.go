package interval

import (
	"math"

	"github.com/mlliarm/interval-arithmetic/round"
)

// Divide computes x / y, a sound enclosure of {a/b : a ∈ x, b ∈ y, b ≠ 0}.
// The case split follows the position of zero in the divisor:
//
//	.----------------------------------------.
//	|        y        |        handler       |
//	|=================|======================|
//	|    0 ∉ [yl,yh]  |      divNonZero      |
//	|-----------------|----------------------|
//	|   yl < 0 < yh   |       divZero        |
//	|-----------------|----------------------|
//	|  yl < 0, yh = 0 |   divNegative(yl)    |
//	|-----------------|----------------------|
//	|  yl = 0, yh > 0 |   divPositive(yh)    |
//	|-----------------|----------------------|
//	|     [0, 0]      |          ∅           |
//	 ----------------------------------------
//
// An empty operand absorbs.
func (x Interval) Divide(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	if y.ZeroIn() {
		switch {
		case y.lo != 0 && y.hi != 0:
			return divZero(x)
		case y.lo != 0:
			return divNegative(x, y.lo)
		case y.hi != 0:
			return divPositive(x, y.hi)
		default:
			// Division by the singleton zero is undefined for every element.
			return Empty()
		}
	}
	return divNonZero(x, y)
}

// Div is Divide.
func (x Interval) Div(y Interval) Interval {
	return x.Divide(y)
}

// divNonZero handles divisors bounded away from zero. The corner selection
// mirrors the multiplication table with the divisor's corners in reciprocal
// position; rounding is applied to the quotient directly, never to a
// separate reciprocal interval, which would round twice.
func divNonZero(x, y Interval) Interval {
	xl, xh, yl, yh := x.lo, x.hi, y.lo, y.hi
	negDivisor := classify(y) == signNegative
	switch classify(x) {
	case signNegative:
		if negDivisor {
			return Interval{lo: round.DivLo(xh, yl), hi: round.DivHi(xl, yh)}
		}
		return Interval{lo: round.DivLo(xl, yl), hi: round.DivHi(xh, yh)}
	case signMixed:
		if negDivisor {
			return Interval{lo: round.DivLo(xh, yh), hi: round.DivHi(xl, yh)}
		}
		return Interval{lo: round.DivLo(xl, yl), hi: round.DivHi(xh, yl)}
	default:
		if negDivisor {
			return Interval{lo: round.DivLo(xh, yh), hi: round.DivHi(xl, yl)}
		}
		return Interval{lo: round.DivLo(xl, yh), hi: round.DivHi(xh, yl)}
	}
}

// divZero handles divisors with zero strictly in their interior. The true
// result is two disjoint unbounded rays; their hull is the whole line
// (multi-interval results are out of contract). An exactly-zero dividend
// still divides to [0, 0].
func divZero(x Interval) Interval {
	if x.lo == 0 && x.hi == 0 {
		return x
	}
	return Whole()
}

// divNegative handles divisors of the form [yl, 0], yl < 0. The divisor
// approaches zero from one side only, so at most one direction of
// unboundedness is reachable, selected by the dividend's sign.
func divNegative(x Interval, yl float64) Interval {
	if x.lo == 0 && x.hi == 0 {
		return x
	}
	if x.ZeroIn() {
		return Whole()
	}
	if x.hi < 0 {
		return Interval{lo: round.DivLo(x.hi, yl), hi: math.Inf(1)}
	}
	return Interval{lo: math.Inf(-1), hi: round.DivHi(x.lo, yl)}
}

// divPositive handles divisors of the form [0, yh], yh > 0, symmetric to
// divNegative.
func divPositive(x Interval, yh float64) Interval {
	if x.lo == 0 && x.hi == 0 {
		return x
	}
	if x.ZeroIn() {
		return Whole()
	}
	if x.hi < 0 {
		return Interval{lo: math.Inf(-1), hi: round.DivHi(x.hi, yh)}
	}
	return Interval{lo: round.DivLo(x.lo, yh), hi: math.Inf(1)}
}
