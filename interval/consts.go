package interval

import (
	"math"

	"github.com/mlliarm/interval-arithmetic/round"
)

// Commonly used constant intervals. The irrational constants are widened
// one ulp on each side of the nearest representable value, so each interval
// encloses the mathematical constant.

// Zero yields the singleton [0, 0].
func Zero() Interval {
	return Point(0)
}

// One yields the singleton [1, 1].
func One() Interval {
	return Point(1)
}

// Pi yields a two-ulp-wide enclosure of π.
func Pi() Interval {
	return Interval{lo: round.Prev(math.Pi), hi: round.Next(math.Pi)}
}

// E yields a two-ulp-wide enclosure of Euler's number.
func E() Interval {
	return Interval{lo: round.Prev(math.E), hi: round.Next(math.E)}
}

// Ln2 yields a two-ulp-wide enclosure of the natural logarithm of 2.
func Ln2() Interval {
	return Interval{lo: round.Prev(math.Ln2), hi: round.Next(math.Ln2)}
}
