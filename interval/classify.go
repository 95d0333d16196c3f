package interval

// signClass partitions a non-empty interval by where zero falls relative to
// its bounds. It exists purely for branch selection in multiplication and
// division; classification never constructs or mutates intervals.
type signClass int

const (
	// signNegative: lo < 0 ∧ hi ≤ 0.
	signNegative signClass = iota
	// signMixed: lo < 0 < hi, the interval straddles zero.
	signMixed
	// signPositive: lo ≥ 0 ∧ hi > 0.
	signPositive
	// signZero: the singleton [0, 0].
	signZero
)

// classify tests lo, then hi, mirroring the branch order of the arithmetic
// dispatch tables. Exactly one class applies to any non-empty interval.
func classify(v Interval) signClass {
	if v.lo < 0 {
		if v.hi > 0 {
			return signMixed
		}
		return signNegative
	}
	if v.hi > 0 {
		return signPositive
	}
	return signZero
}
