package interval

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		lo, hi float64
		empty  bool
	}{
		{1, 2, false},
		{2, 2, false},
		{2, 1, true},
		{nan, 1, true},
		{1, nan, true},
		{nan, nan, true},
		{-inf, inf, false},
		{inf, inf, false},
	}

	for _, test := range tests {
		res := New(test.lo, test.hi)
		if res.IsEmpty() != test.empty {
			t.Errorf("New(%v, %v) = %s, IsEmpty = %v, expected %v",
				test.lo, test.hi, res, res.IsEmpty(), test.empty)
		}
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		v                    Interval
		empty, whole, zeroIn bool
	}{
		{New(1, 2), false, false, false},
		{New(-2, -1), false, false, false},
		{New(-1, 1), false, false, true},
		{New(0, 2), false, false, true},
		{New(-2, 0), false, false, true},
		{Point(0), false, false, true},
		{Whole(), false, true, true},
		{Empty(), true, false, false},
	}

	for _, test := range tests {
		if res := test.v.IsEmpty(); res != test.empty {
			t.Errorf("IsEmpty(%s) = %v, expected %v", test.v, res, test.empty)
		}
		if res := test.v.IsWhole(); res != test.whole {
			t.Errorf("IsWhole(%s) = %v, expected %v", test.v, res, test.whole)
		}
		if res := test.v.ZeroIn(); res != test.zeroIn {
			t.Errorf("ZeroIn(%s) = %v, expected %v", test.v, res, test.zeroIn)
		}
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		v        Interval
		x        float64
		expected bool
	}{
		{New(1, 2), 1, true},
		{New(1, 2), 2, true},
		{New(1, 2), 1.5, true},
		{New(1, 2), 0.999, false},
		{New(1, 2), 2.001, false},
		{Whole(), -1e308, true},
		{Whole(), math.Inf(1), true},
		{Empty(), 0, false},
	}

	for _, test := range tests {
		if res := test.v.Contains(test.x); res != test.expected {
			t.Errorf("%v ∈ %s = %v, expected %v", test.x, test.v, res, test.expected)
		}
	}
}

func TestEq(t *testing.T) {
	// Non-canonical empty encoding, as arithmetic may produce one.
	scrambled := Interval{lo: 5, hi: 4}

	tests := []struct {
		a, b     Interval
		expected bool
	}{
		{New(1, 2), New(1, 2), true},
		{New(1, 2), New(1, 3), false},
		{Point(0), Point(0), true},
		{Whole(), Whole(), true},
		{Empty(), Empty(), true},
		{Empty(), scrambled, true},
		{scrambled, Empty(), true},
		{Empty(), Point(0), false},
		{Whole(), Empty(), false},
	}

	for _, test := range tests {
		if res := test.a.Eq(test.b); res != test.expected {
			t.Errorf("%s = %s is %v, expected %v", test.a, test.b, res, test.expected)
		}
	}
}

func TestWidth(t *testing.T) {
	if w := Empty().Width(); w != 0 {
		t.Errorf("width of %s = %v, expected 0", Empty(), w)
	}
	if w := Whole().Width(); !math.IsInf(w, 1) {
		t.Errorf("width of %s = %v, expected ∞", Whole(), w)
	}
	if w := New(1, 3).Width(); w < 2 {
		t.Errorf("width of %s = %v, must not understate 2", New(1, 3), w)
	}
	if w := Point(7).Width(); w < 0 || w > 1e-15 {
		t.Errorf("width of %s = %v, expected at most one rounding step", Point(7), w)
	}
}

func TestConstants(t *testing.T) {
	tests := []struct {
		v        Interval
		enclosed float64
	}{
		{Zero(), 0},
		{One(), 1},
		{Pi(), math.Pi},
		{E(), math.E},
		{Ln2(), math.Ln2},
	}

	for _, test := range tests {
		if !test.v.Contains(test.enclosed) {
			t.Errorf("%v ∉ %s", test.enclosed, test.v)
		}
		if w := test.v.Width(); w > 1e-14 {
			t.Errorf("%s is too wide for a constant enclosure: width %v", test.v, w)
		}
	}
}
