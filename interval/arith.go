package interval

import (
	"math"

	"github.com/mlliarm/interval-arithmetic/round"
)

// Add computes x + y. The bounds of a sum are attained at same-indexed
// endpoints, so no sign dispatch is needed:
//
//	x + y = [↓(xl + yl), ↑(xh + yh)]
//
// An empty operand absorbs.
func (x Interval) Add(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return Interval{
		lo: round.AddLo(x.lo, y.lo),
		hi: round.AddHi(x.hi, y.hi),
	}
}

// Subtract computes x - y. The endpoints cross, since subtracting the
// largest element of y minimizes the difference:
//
//	x - y = [↓(xl - yh), ↑(xh - yl)]
//
// Computed directly rather than as x + (-y) to avoid an extra rounding step.
func (x Interval) Subtract(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return Interval{
		lo: round.SubLo(x.lo, y.hi),
		hi: round.SubHi(x.hi, y.lo),
	}
}

// Sub is Subtract.
func (x Interval) Sub(y Interval) Interval {
	return x.Subtract(y)
}

// Negative computes -x. Negation is exact in floating point, so no rounding
// applies. The whole line and the empty interval are fixed points.
func (x Interval) Negative() Interval {
	return Interval{lo: -x.hi, hi: -x.lo}
}

// Positive is the identity.
func (x Interval) Positive() Interval {
	return x
}

// Multiply computes x * y. The extrema of {a·b : a ∈ x, b ∈ y} are always
// attained at corner pairs of the operand bounds; which corners, and which
// way each must round, depends on the operands' sign classes:
//
//	.----------------------------------------------------------------.
//	|    x    |    y    |       result lo       |      result hi      |
//	|=========|=========|=======================|=====================|
//	|  mixed  |  mixed  | min(↓xl*yh, ↓xh*yl)   | max(↑xl*yl, ↑xh*yh) |
//	|  mixed  |   neg   |        ↓xh*yl         |       ↑xl*yl        |
//	|  mixed  |   pos   |        ↓xl*yh         |       ↑xh*yh        |
//	|   neg   |  mixed  |        ↓xl*yh         |       ↑xl*yl        |
//	|   neg   |   neg   |        ↓xh*yh         |       ↑xl*yl        |
//	|   neg   |   pos   |        ↓xl*yh         |       ↑xh*yl        |
//	|   pos   |  mixed  |        ↓xh*yl         |       ↑xh*yh        |
//	|   pos   |   neg   |        ↓xh*yl         |       ↑xl*yh        |
//	|   pos   |   pos   |        ↓xl*yl         |       ↑xh*yh        |
//	 ----------------------------------------------------------------
//
// Selecting the correct corner per branch, instead of taking min/max over
// all four corners with a single rounding direction, keeps every bound
// rounded the right way. An exact-zero factor short-circuits to [0, 0]
// before the table: that product is exact and also keeps ∞ * 0 from ever
// being formed.
func (x Interval) Multiply(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	cx, cy := classify(x), classify(y)
	if cx == signZero || cy == signZero {
		return Point(0)
	}
	xl, xh, yl, yh := x.lo, x.hi, y.lo, y.hi
	switch cx {
	case signNegative:
		switch cy {
		case signNegative:
			return Interval{lo: round.MulLo(xh, yh), hi: round.MulHi(xl, yl)}
		case signMixed:
			return Interval{lo: round.MulLo(xl, yh), hi: round.MulHi(xl, yl)}
		default:
			return Interval{lo: round.MulLo(xl, yh), hi: round.MulHi(xh, yl)}
		}
	case signMixed:
		switch cy {
		case signNegative:
			return Interval{lo: round.MulLo(xh, yl), hi: round.MulHi(xl, yl)}
		case signMixed:
			return Interval{
				lo: math.Min(round.MulLo(xl, yh), round.MulLo(xh, yl)),
				hi: math.Max(round.MulHi(xl, yl), round.MulHi(xh, yh)),
			}
		default:
			return Interval{lo: round.MulLo(xl, yh), hi: round.MulHi(xh, yh)}
		}
	default:
		switch cy {
		case signNegative:
			return Interval{lo: round.MulLo(xh, yl), hi: round.MulHi(xl, yh)}
		case signMixed:
			return Interval{lo: round.MulLo(xh, yl), hi: round.MulHi(xh, yh)}
		default:
			return Interval{lo: round.MulLo(xl, yl), hi: round.MulHi(xh, yh)}
		}
	}
}

// Mul is Multiply.
func (x Interval) Mul(y Interval) Interval {
	return x.Multiply(y)
}
