package quantity

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon is the default bounded relative epsilon used when the
// caller does not supply one: the machine epsilon for float64.
const DefaultEpsilon = 2.220446049250313e-16

// Equal reports whether a and b are within a bounded relative epsilon:
// |a-b| <= epsilon * max(1, |a|, |b|). Unknown never compares equal to
// anything, including another Unknown, per spec §3.1 — IsUnknown is the
// only valid test for it.
func Equal[U Unit](a, b Quantity[U], epsilon float64) bool {
	if a.IsUnknown() || b.IsUnknown() {
		return false
	}
	bound := math.Max(1, math.Max(math.Abs(a.value), math.Abs(b.value)))
	return floats.EqualWithinAbs(a.value, b.value, epsilon*bound)
}

// EqualDefault is Equal with DefaultEpsilon.
func EqualDefault[U Unit](a, b Quantity[U]) bool {
	return Equal(a, b, DefaultEpsilon)
}
