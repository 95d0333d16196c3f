// Package interval implements verified interval arithmetic over IEEE-754
// float64: every operation returns an interval guaranteed to contain the
// exact mathematical result for any choice of operand values, with bounds
// rounded outward to absorb floating-point error.
package interval

import (
	"math"

	"github.com/mlliarm/interval-arithmetic/round"
)

// Interval is the closed range [lo, hi] of extended reals, lo ≤ hi.
// The empty set ∅ is encoded by the bound pair [∞, -∞] (any lo > hi pair is
// treated as empty), and the whole line by [-∞, ∞]. Intervals are immutable
// value types; every operation constructs a fresh result.
type Interval struct {
	lo, hi float64
}

// New creates the interval [lo, hi]. Malformed bound pairs (lo > hi, or a
// NaN bound) canonicalize to the empty interval.
func New(lo, hi float64) Interval {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Empty()
	}
	return Interval{lo: lo, hi: hi}
}

// Point creates the singleton interval [v, v].
func Point(v float64) Interval {
	return New(v, v)
}

// Empty yields the empty interval ∅, encoded as [∞, -∞].
func Empty() Interval {
	return Interval{lo: math.Inf(1), hi: math.Inf(-1)}
}

// Whole yields the whole line [-∞, ∞].
func Whole() Interval {
	return Interval{lo: math.Inf(-1), hi: math.Inf(1)}
}

// Lo returns the lower bound.
func (v Interval) Lo() float64 {
	return v.lo
}

// Hi returns the upper bound.
func (v Interval) Hi() float64 {
	return v.hi
}

// IsEmpty checks whether the interval is the empty set.
func (v Interval) IsEmpty() bool {
	return v.lo > v.hi
}

// IsWhole checks whether the interval is the whole line [-∞, ∞].
func (v Interval) IsWhole() bool {
	return math.IsInf(v.lo, -1) && math.IsInf(v.hi, 1)
}

// Contains checks whether the value x lies in the interval.
func (v Interval) Contains(x float64) bool {
	return !v.IsEmpty() && v.lo <= x && x <= v.hi
}

// ZeroIn checks whether zero lies in the interval.
func (v Interval) ZeroIn() bool {
	return v.Contains(0)
}

// Eq checks for interval equality. All encodings of the empty set are equal.
func (v1 Interval) Eq(v2 Interval) bool {
	if v1.IsEmpty() || v2.IsEmpty() {
		return v1.IsEmpty() && v2.IsEmpty()
	}
	return v1.lo == v2.lo && v1.hi == v2.hi
}

// Width returns hi - lo rounded toward ∞, so the reported width never
// understates the interval. The empty interval has width 0.
func (v Interval) Width() float64 {
	if v.IsEmpty() {
		return 0
	}
	return round.SubHi(v.hi, v.lo)
}
