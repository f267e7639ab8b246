package advanced

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, a few predicates (point on segment,
// tuple equality) are tolerance based. The crossing kernels themselves compare
// exactly, since their tie-break rules depend on exact comparisons.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// IsEpsilonZero reports whether v is within Tolerance of zero. NaN is never
// zero.
func IsEpsilonZero(v float64) bool {
	return math.Abs(v) <= Tolerance
}

// Three way comparison with the tolerance acting as a dead band around
// equality.
func compareEpsilon(a, b float64) int {
	d := a - b
	if math.Abs(d) <= Tolerance {
		return 0
	}
	if d < 0 {
		return -1
	}
	return 1
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Round to nearest, with halves going toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
