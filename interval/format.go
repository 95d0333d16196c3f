package interval

import (
	"math"
	"strconv"

	"github.com/fatih/color"
)

var colorize = struct {
	Element func(...interface{}) string
	Empty   func(...interface{}) string
}{
	Element: color.New(color.FgCyan).SprintFunc(),
	Empty:   color.New(color.FgHiRed).SprintFunc(),
}

func (v Interval) String() string {
	if v.IsEmpty() {
		return colorize.Empty("∅")
	}
	return "[" + colorize.Element(boundString(v.lo)) +
		", " + colorize.Element(boundString(v.hi)) + "]"
}

func boundString(b float64) string {
	switch {
	case math.IsInf(b, -1):
		return "-∞"
	case math.IsInf(b, 1):
		return "∞"
	}
	return strconv.FormatFloat(b, 'g', -1, 64)
}
