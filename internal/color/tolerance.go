package color

import "math"

// Tolerance is the single fixed epsilon used by every approximate
// comparison in this package: component equality, boundary snapping in
// the conversion engine, and the Near* predicates below.
const Tolerance = 1e-4

// EquivalentValue reports whether a and b differ by no more than Tolerance.
func EquivalentValue(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// Normalize clamps x into [0, 1].
func Normalize(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// NearZero reports whether x is within Tolerance of zero.
func NearZero(x float64) bool {
	return math.Abs(x) <= Tolerance
}

// NearZeroOrLess reports whether x is negative or within Tolerance of zero.
func NearZeroOrLess(x float64) bool {
	return x < 0 || NearZero(x)
}

// NearOne reports whether x is within Tolerance of one.
func NearOne(x float64) bool {
	return math.Abs(1-x) <= Tolerance
}

// NearOneOrMore reports whether x exceeds one or is within Tolerance of it.
func NearOneOrMore(x float64) bool {
	return x > 1 || NearOne(x)
}
