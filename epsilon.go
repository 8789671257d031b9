package rt

import "math"

// Epsilon is the default tolerance for approximate float comparison in
// this library's domain. Coordinates and colors a renderer produces
// rarely need agreement beyond four decimal places.
const Epsilon = 1e-4

// ApproxEq reports whether a and b differ by at most eps in absolute
// terms. Use it when the compared values live on a known scale, such as
// color channels in [0,1].
func ApproxEq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// RelEq reports whether a and b differ by at most maxRel relative to
// the larger magnitude of the two. Use it when values span orders of
// magnitude. Exactly equal values (including infinities of the same
// sign) always compare equal.
func RelEq(a, b, maxRel float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= maxRel*largest
}

// ULPEq reports whether a and b are within maxULPs representable
// float64 values of each other. NaN never compares equal; values of
// opposite sign compare equal only when both are zero.
func ULPEq(a, b float64, maxULPs uint64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.Signbit(a) != math.Signbit(b) {
		return a == b
	}
	ua := math.Float64bits(a)
	ub := math.Float64bits(b)
	if ua > ub {
		ua, ub = ub, ua
	}
	return ub-ua <= maxULPs
}
