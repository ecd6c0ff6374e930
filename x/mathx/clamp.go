package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsNaN reports whether f is a NaN without pulling in package math.
func IsNaN[T constraints.Float](f T) bool { return f != f }

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite[T constraints.Float](f T) bool { return !IsNaN(f - f) }
