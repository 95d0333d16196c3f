// Package round provides the directed-rounding primitives behind the
// interval arithmetic engine. Each elementary operation is evaluated in the
// machine's round-to-nearest mode and then stepped one unit in the last
// place toward the required infinity, so the true mathematical result of
// x ∘ y always lies between the Lo and Hi variants of ∘.
package round

import "math"

// Prev steps v one representable value toward -∞. ∞ is a fixed point, so
// an unbounded upper limit can never collapse to a finite one:
//
//	.---------------------.
//	|    v    |  Prev(v)  |
//	|=========|===========|
//	|  ∈  ℝ   |  v - 1ulp |
//	|---------|-----------|
//	|    ∞    |     ∞     |
//	|---------|-----------|
//	|   -∞    |    -∞     |
//	 ---------------------
func Prev(v float64) float64 {
	if math.IsInf(v, 1) {
		return v
	}
	return math.Nextafter(v, math.Inf(-1))
}

// Next steps v one representable value toward ∞. -∞ is a fixed point:
//
//	.---------------------.
//	|    v    |  Next(v)  |
//	|=========|===========|
//	|  ∈  ℝ   |  v + 1ulp |
//	|---------|-----------|
//	|    ∞    |     ∞     |
//	|---------|-----------|
//	|   -∞    |    -∞     |
//	 ---------------------
func Next(v float64) float64 {
	if math.IsInf(v, -1) {
		return v
	}
	return math.Nextafter(v, math.Inf(1))
}

// AddLo computes x + y rounded toward -∞.
func AddLo(x, y float64) float64 {
	return Prev(x + y)
}

// AddHi computes x + y rounded toward ∞.
func AddHi(x, y float64) float64 {
	return Next(x + y)
}

// SubLo computes x - y rounded toward -∞.
func SubLo(x, y float64) float64 {
	return Prev(x - y)
}

// SubHi computes x - y rounded toward ∞.
func SubHi(x, y float64) float64 {
	return Next(x - y)
}

// MulLo computes x * y rounded toward -∞.
func MulLo(x, y float64) float64 {
	return Prev(x * y)
}

// MulHi computes x * y rounded toward ∞.
func MulHi(x, y float64) float64 {
	return Next(x * y)
}

// DivLo computes x / y rounded toward -∞.
func DivLo(x, y float64) float64 {
	return Prev(x / y)
}

// DivHi computes x / y rounded toward ∞.
func DivHi(x, y float64) float64 {
	return Next(x / y)
}
